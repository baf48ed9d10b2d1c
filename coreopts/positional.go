package coreopts

// allocate assigns the free tokens collected during matching to the
// spec's positional slots and rewrites the placeholder events with their
// slot names in place.
//
// Slots claim from the front of the operand list in declaration order. A
// bounded slot takes up to its Max; a variadic slot takes everything
// except the minimums still owed to the slots after it. A slot left below
// its Min fails the parse, blaming that slot; operands no slot can take
// fail it with the first orphan.
func allocate(spec *Spec, events []ArgEvent, freeIdx []int, greedyEngaged bool) error {
	next := 0
	for i, slot := range spec.slots {
		if slot.Greedy {
			// Greedy capture already named its events; it just has to
			// have happened at all.
			if !greedyEngaged {
				return &ParseError{Type: ErrorTypeMissingOperand, Slot: slot.Name}
			}
			continue
		}

		avail := len(freeIdx) - next
		var take int
		if slot.Max != Unbounded {
			take = slot.Max
			if take > avail {
				take = avail
			}
		} else {
			reserve := 0
			for _, later := range spec.slots[i+1:] {
				reserve += later.Min
			}
			take = avail - reserve
			if take < 0 {
				take = 0
			}
		}

		if take < slot.Min {
			return &ParseError{Type: ErrorTypeMissingOperand, Slot: slot.Name}
		}
		for k := 0; k < take; k++ {
			events[freeIdx[next]].ID = slot.Name
			next++
		}
	}

	if next < len(freeIdx) {
		return &ParseError{Type: ErrorTypeExcessOperand, Value: events[freeIdx[next]].Value}
	}
	return nil
}
