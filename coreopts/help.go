package coreopts

import "strings"

// Usage renders usage text for a spec: a synopsis line, the visible
// options in declaration order, and the positional slots. Hidden long
// spellings never appear.
func Usage(spec *Spec) string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(spec.name)
	if len(spec.options) > 0 {
		b.WriteString(" [OPTION]...")
	}
	for _, slot := range spec.slots {
		b.WriteString(" ")
		b.WriteString(slotSynopsis(slot))
	}
	b.WriteString("\n")

	lefts := make([]string, 0, len(spec.options))
	helps := make([]string, 0, len(spec.options))
	maxLeft := 0
	for _, opt := range spec.options {
		left := optionSynopsis(opt)
		if left == "" {
			continue
		}
		lefts = append(lefts, left)
		helps = append(helps, opt.Help)
		if len(left) > maxLeft {
			maxLeft = len(left)
		}
	}

	if len(lefts) > 0 {
		b.WriteString("\nOptions:\n")
		for i, left := range lefts {
			b.WriteString("  ")
			b.WriteString(left)
			if helps[i] != "" {
				b.WriteString(strings.Repeat(" ", maxLeft-len(left)+2))
				b.WriteString(helps[i])
			}
			b.WriteString("\n")
		}
	}

	if withHelp := describedSlots(spec.slots); len(withHelp) > 0 {
		b.WriteString("\nOperands:\n")
		maxName := 0
		for _, slot := range withHelp {
			if len(slot.Name) > maxName {
				maxName = len(slot.Name)
			}
		}
		for _, slot := range withHelp {
			b.WriteString("  ")
			b.WriteString(slot.Name)
			b.WriteString(strings.Repeat(" ", maxName-len(slot.Name)+2))
			b.WriteString(slot.Help)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// optionSynopsis builds the left column for one option, e.g.
// "-c, --bytes=BYTES" or "--color[=COLOR]". Options with only hidden
// spellings produce nothing.
func optionSynopsis(opt *OptionSpec) string {
	placeholder := strings.ToUpper(opt.ID)

	var parts []string
	for _, sh := range opt.Shorts {
		s := "-" + string(sh.Char)
		switch sh.Arity {
		case ArityRequired:
			s += " " + placeholder
		case ArityOptional:
			s += "[" + placeholder + "]"
		}
		parts = append(parts, s)
	}
	for _, lo := range opt.Longs {
		if lo.Hidden {
			continue
		}
		s := "--" + lo.Name
		switch lo.Arity {
		case ArityRequired:
			s += "=" + placeholder
		case ArityOptional:
			s += "[=" + placeholder + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// slotSynopsis renders one slot for the synopsis line: NAME for a fixed
// single operand, [NAME] when it may be absent, NAME... when variadic.
func slotSynopsis(slot Slot) string {
	s := slot.Name
	if slot.Max == Unbounded || slot.Max > 1 {
		s += "..."
	}
	if slot.Min == 0 {
		s = "[" + s + "]"
	}
	return s
}

func describedSlots(slots []Slot) []Slot {
	var out []Slot
	for _, slot := range slots {
		if slot.Help != "" {
			out = append(out, slot)
		}
	}
	return out
}
