package coreopts

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SpecBuilder assembles a Spec with a fluent API and validates it at
// Build time. Structurally inconsistent specs are rejected here so the
// matcher never has to second-guess its tables.
type SpecBuilder struct {
	name        string
	options     []*OptionSpec
	slots       []*Slot
	shorthands  []pendingShorthand
	numericWins bool
}

type pendingShorthand struct {
	sign rune
	sh   *NumericShorthand
}

// NewSpec starts a spec for the named utility.
func NewSpec(name string) *SpecBuilder {
	return &SpecBuilder{name: name}
}

// Option declares a logical option under the given stable identity and
// returns a builder for its spellings.
func (b *SpecBuilder) Option(id string) *OptionBuilder {
	opt := &OptionSpec{ID: id}
	b.options = append(b.options, opt)
	return &OptionBuilder{opt: opt, parent: b}
}

// Positional declares the next positional slot.
func (b *SpecBuilder) Positional(name string) *SlotBuilder {
	slot := &Slot{Name: name, Min: 1, Max: 1}
	b.slots = append(b.slots, slot)
	return &SlotBuilder{slot: slot, parent: b}
}

// Shorthand binds the deprecated numeric form with the given sign ('+' or
// '-') to an option identity. The digit payload becomes the option's value.
func (b *SpecBuilder) Shorthand(sign rune, optionID string) *ShorthandBuilder {
	sh := &NumericShorthand{Option: optionID}
	b.shorthands = append(b.shorthands, pendingShorthand{sign: sign, sh: sh})
	return &ShorthandBuilder{sh: sh, parent: b}
}

// NumericWins makes a declared numeric shorthand take precedence over a
// token that could also be read as a short-option cluster. The default is
// the opposite: a token the cluster grammar explains stays a cluster.
func (b *SpecBuilder) NumericWins() *SpecBuilder {
	b.numericWins = true
	return b
}

// Build validates the declarations and returns the immutable Spec.
func (b *SpecBuilder) Build() (*Spec, error) {
	slots := make([]Slot, len(b.slots))
	for i, slot := range b.slots {
		slots[i] = *slot
	}

	s := &Spec{
		name:        b.name,
		options:     b.options,
		slots:       slots,
		longs:       orderedmap.New[string, spelling](),
		shorts:      make(map[rune]spelling),
		numericWins: b.numericWins,
		greedyIndex: -1,
	}

	seenIDs := make(map[string]bool, len(b.options))
	for _, opt := range b.options {
		if opt.ID == "" {
			return nil, fmt.Errorf("coreopts: option with empty identity")
		}
		if seenIDs[opt.ID] {
			return nil, fmt.Errorf("coreopts: duplicate option identity %q", opt.ID)
		}
		seenIDs[opt.ID] = true

		if opt.Values != nil && !opt.takesValue() {
			return nil, fmt.Errorf("coreopts: option %q declares values but no spelling takes one", opt.ID)
		}
		if len(opt.Shorts) == 0 && len(opt.Longs) == 0 {
			return nil, fmt.Errorf("coreopts: option %q has no spellings", opt.ID)
		}

		for _, sh := range opt.Shorts {
			if _, dup := s.shorts[sh.Char]; dup {
				return nil, fmt.Errorf("coreopts: duplicate short option -%c", sh.Char)
			}
			s.shorts[sh.Char] = spelling{
				opt:     opt,
				arity:   sh.Arity,
				display: "-" + string(sh.Char),
			}
		}
		for _, lo := range opt.Longs {
			if lo.Name == "" {
				return nil, fmt.Errorf("coreopts: option %q has an empty long spelling", opt.ID)
			}
			key := lo.Name
			if lo.Hidden {
				key = "-" + lo.Name
			}
			if _, dup := s.longs.Get(key); dup {
				return nil, fmt.Errorf("coreopts: duplicate long option --%s", key)
			}
			s.longs.Set(key, spelling{
				opt:     opt,
				arity:   lo.Arity,
				hidden:  lo.Hidden,
				display: "--" + key,
			})
		}
	}

	if err := b.validateSlots(s); err != nil {
		return nil, err
	}

	for _, p := range b.shorthands {
		if !seenIDs[p.sh.Option] {
			return nil, fmt.Errorf("coreopts: shorthand bound to unknown option %q", p.sh.Option)
		}
		switch p.sign {
		case '+':
			if s.plus != nil {
				return nil, fmt.Errorf("coreopts: duplicate '+' shorthand")
			}
			s.plus = p.sh
		case '-':
			if s.minus != nil {
				return nil, fmt.Errorf("coreopts: duplicate '-' shorthand")
			}
			s.minus = p.sh
		default:
			return nil, fmt.Errorf("coreopts: shorthand sign must be '+' or '-', got %q", p.sign)
		}
	}

	return s, nil
}

// validateSlots checks slot arity consistency and precomputes the greedy
// activation threshold.
func (b *SpecBuilder) validateSlots(s *Spec) error {
	names := make(map[string]bool, len(b.slots))
	openSince := -1 // index of last unbounded slot not yet closed by a fixed one
	for i, slot := range b.slots {
		if slot.Name == "" {
			return fmt.Errorf("coreopts: positional slot %d has no name", i)
		}
		if names[slot.Name] {
			return fmt.Errorf("coreopts: duplicate positional slot %q", slot.Name)
		}
		names[slot.Name] = true

		if slot.Greedy {
			if i != len(b.slots)-1 {
				return fmt.Errorf("coreopts: greedy slot %q must be last", slot.Name)
			}
			s.greedyIndex = i
			after := 0
			for _, prev := range b.slots[:i] {
				if prev.Max == Unbounded || prev.Min != prev.Max {
					return fmt.Errorf("coreopts: slot %q before greedy slot %q must have a fixed count",
						prev.Name, slot.Name)
				}
				after += prev.Max
			}
			s.greedyAfter = after
			continue
		}

		if slot.Max != Unbounded && slot.Max < slot.Min {
			return fmt.Errorf("coreopts: slot %q has max below min", slot.Name)
		}
		if slot.Max == Unbounded {
			if openSince >= 0 {
				return fmt.Errorf("coreopts: slots %q and %q are both unbounded with no fixed slot between",
					b.slots[openSince].Name, slot.Name)
			}
			openSince = i
		} else if slot.Min == slot.Max && slot.Min > 0 {
			openSince = -1
		}
	}
	return nil
}

// MustBuild is Build for specs known good at compile time; it panics on a
// validation failure.
func (b *SpecBuilder) MustBuild() *Spec {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// OptionBuilder configures the spellings of one logical option.
type OptionBuilder struct {
	opt    *OptionSpec
	parent *SpecBuilder
}

// Short adds a flag spelling that takes no value (-q).
func (o *OptionBuilder) Short(c rune) *OptionBuilder {
	o.opt.Shorts = append(o.opt.Shorts, ShortSpelling{Char: c, Arity: ArityNone})
	return o
}

// ShortValue adds a short spelling that requires a value (-c NUM).
func (o *OptionBuilder) ShortValue(c rune) *OptionBuilder {
	o.opt.Shorts = append(o.opt.Shorts, ShortSpelling{Char: c, Arity: ArityRequired})
	return o
}

// OptionalShort adds a short spelling whose value is optional. An optional
// short only ever receives a value from the rest of its cluster (-ivalue);
// a separate following token is never consumed.
func (o *OptionBuilder) OptionalShort(c rune) *OptionBuilder {
	o.opt.Shorts = append(o.opt.Shorts, ShortSpelling{Char: c, Arity: ArityOptional})
	return o
}

// Long adds a long spelling that takes no value (--quiet).
func (o *OptionBuilder) Long(name string) *OptionBuilder {
	o.opt.Longs = append(o.opt.Longs, LongSpelling{Name: name, Arity: ArityNone})
	return o
}

// LongValue adds a long spelling that requires a value (--bytes=NUM, with
// the value alternatively supplied by the next token).
func (o *OptionBuilder) LongValue(name string) *OptionBuilder {
	o.opt.Longs = append(o.opt.Longs, LongSpelling{Name: name, Arity: ArityRequired})
	return o
}

// OptionalLong adds a long spelling whose value is optional. Only an
// inline =value is honored; a following token is never consumed, so
// operands cannot be swallowed by accident (--color[=WHEN]).
func (o *OptionBuilder) OptionalLong(name string) *OptionBuilder {
	o.opt.Longs = append(o.opt.Longs, LongSpelling{Name: name, Arity: ArityOptional})
	return o
}

// HiddenLong adds a no-value long spelling that is matched like any other
// but requires an extra leading hyphen and never appears in usage text.
func (o *OptionBuilder) HiddenLong(name string) *OptionBuilder {
	o.opt.Longs = append(o.opt.Longs, LongSpelling{Name: name, Arity: ArityNone, Hidden: true})
	return o
}

// Value adds one accepted value with optional aliases; all of them resolve
// to the canonical name in emitted events.
func (o *OptionBuilder) Value(canonical string, aliases ...string) *OptionBuilder {
	if o.opt.Values == nil {
		o.opt.Values = newValueSet()
	}
	o.opt.Values.add(canonical, aliases...)
	return o
}

// Values adds several accepted values without aliases.
func (o *OptionBuilder) Values(names ...string) *OptionBuilder {
	for _, n := range names {
		o.Value(n)
	}
	return o
}

// Help sets the usage description for this option.
func (o *OptionBuilder) Help(text string) *OptionBuilder {
	o.opt.Help = text
	return o
}

// Back returns to the spec builder for continued chaining.
func (o *OptionBuilder) Back() *SpecBuilder { return o.parent }

// SlotBuilder configures one positional slot.
type SlotBuilder struct {
	slot   *Slot
	parent *SpecBuilder
}

// Exactly requires the slot to receive exactly n operands.
func (s *SlotBuilder) Exactly(n int) *SlotBuilder {
	s.slot.Min, s.slot.Max = n, n
	return s
}

// Range allows the slot between min and max operands, claimed from the
// front of the remaining operand list.
func (s *SlotBuilder) Range(min, max int) *SlotBuilder {
	s.slot.Min, s.slot.Max = min, max
	return s
}

// AtLeast makes the slot variadic with a lower bound. A variadic slot that
// is not last leaves enough operands for the minimums of the slots after
// it ("N sources then one destination").
func (s *SlotBuilder) AtLeast(n int) *SlotBuilder {
	s.slot.Min, s.slot.Max = n, Unbounded
	return s
}

// Greedy marks the slot greedy-from-here: its first operand and everything
// after it, option-looking tokens included, are captured verbatim and
// option scanning stops for the rest of the input.
func (s *SlotBuilder) Greedy() *SlotBuilder {
	s.slot.Min, s.slot.Max = 1, Unbounded
	s.slot.Greedy = true
	return s
}

// Help sets the usage description for this slot.
func (s *SlotBuilder) Help(text string) *SlotBuilder {
	s.slot.Help = text
	return s
}

// Back returns to the spec builder for continued chaining.
func (s *SlotBuilder) Back() *SpecBuilder { return s.parent }

// ShorthandBuilder configures a deprecated numeric shorthand binding.
type ShorthandBuilder struct {
	sh     *NumericShorthand
	parent *SpecBuilder
}

// Transform rewrites the digit payload before it becomes the event value.
func (s *ShorthandBuilder) Transform(fn func(digits string) (string, error)) *ShorthandBuilder {
	s.sh.Transform = fn
	return s
}

// Back returns to the spec builder for continued chaining.
func (s *ShorthandBuilder) Back() *SpecBuilder { return s.parent }
