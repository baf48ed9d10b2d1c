package coreopts

import (
	"unicode/utf8"

	"github.com/dzonerzy/go-coreopts/internal/fuzzy"
	"github.com/dzonerzy/go-coreopts/internal/pool"
)

// ArgEvent is one normalized occurrence in command-line order. Option
// events carry the option's ID; operand events carry their slot's name.
// HasValue distinguishes a flag sighting from an occurrence with a value,
// including an explicitly empty one (--suffix=).
type ArgEvent struct {
	ID       string
	Value    string
	HasValue bool
}

// ParseResult is the ordered event stream for one invocation. Trailing
// holds the verbatim capture of a greedy slot, when one engaged; the same
// tokens also appear as events under the greedy slot's name.
type ParseResult struct {
	Events   []ArgEvent
	Trailing []string
}

// suggestDistance is the maximum edit distance for unknown-option
// suggestions.
const suggestDistance = 2

var freeIdxPool = pool.NewIntSlicePool(8)

// Parse matches args against the spec and returns the event stream. The
// first violation aborts the parse with a *ParseError; no events are
// returned alongside an error.
func Parse(spec *Spec, args []string) (*ParseResult, error) {
	fi := freeIdxPool.Get()
	defer freeIdxPool.Put(fi)

	tz := newTokenizer(spec, args)
	events := make([]ArgEvent, 0, len(args))
	freeIdx := *fi
	var trailing []string

	for {
		tok, ok := tz.next()
		if !ok {
			break
		}

		switch tok.kind {
		case tokTerminator:
			continue

		case tokFree:
			if spec.greedyIndex >= 0 && len(freeIdx) == spec.greedyAfter {
				trailing = append([]string{tok.raw}, tz.rest()...)
				name := spec.slots[spec.greedyIndex].Name
				for _, v := range trailing {
					events = append(events, ArgEvent{ID: name, Value: v, HasValue: true})
				}
			} else {
				freeIdx = append(freeIdx, len(events))
				events = append(events, ArgEvent{Value: tok.raw, HasValue: true})
			}

		case tokLong:
			var err error
			events, err = matchLong(spec, &tz, tok, events)
			if err != nil {
				return nil, err
			}

		case tokCluster:
			var err error
			events, err = matchCluster(spec, &tz, tok, events)
			if err != nil {
				return nil, err
			}

		case tokNumeric:
			var err error
			events, err = matchNumeric(spec, tok, events)
			if err != nil {
				return nil, err
			}
		}

		if trailing != nil {
			break
		}
	}

	if err := allocate(spec, events, freeIdx, trailing != nil); err != nil {
		*fi = freeIdx
		return nil, err
	}
	*fi = freeIdx

	return &ParseResult{Events: events, Trailing: trailing}, nil
}

// matchLong resolves a --name token by unambiguous prefix and applies the
// matched spelling's arity.
func matchLong(spec *Spec, tz *tokenizer, tok token, events []ArgEvent) ([]ArgEvent, error) {
	if tok.name == "" {
		return nil, &ParseError{Type: ErrorTypeUnknownOption, Option: tok.raw}
	}

	_, sp, candidates, res := resolvePrefix(spec.longs, tok.name)
	switch res {
	case noMatch:
		suggestion := fuzzy.Closest(tok.name, spec.longNames(), suggestDistance)
		if suggestion != "" {
			suggestion = "--" + suggestion
		}
		return nil, &ParseError{
			Type:       ErrorTypeUnknownOption,
			Option:     "--" + tok.name,
			Suggestion: suggestion,
		}
	case ambiguous:
		displays := make([]string, len(candidates))
		for i, c := range candidates {
			displays[i] = "--" + c
		}
		return nil, &ParseError{
			Type:       ErrorTypeAmbiguousOption,
			Option:     "--" + tok.name,
			Candidates: displays,
		}
	}

	switch sp.arity {
	case ArityNone:
		if tok.hasValue {
			return nil, &ParseError{Type: ErrorTypeUnexpectedValue, Option: sp.display, Value: tok.value}
		}
		return append(events, ArgEvent{ID: sp.opt.ID}), nil

	case ArityRequired:
		value := tok.value
		if !tok.hasValue {
			var ok bool
			value, ok = tz.nextRaw()
			if !ok {
				return nil, &ParseError{Type: ErrorTypeMissingValue, Option: sp.display}
			}
		}
		resolvedValue, err := resolveValue(sp, value)
		if err != nil {
			return nil, err
		}
		return append(events, ArgEvent{ID: sp.opt.ID, Value: resolvedValue, HasValue: true}), nil

	default: // ArityOptional; never consumes a following token
		if !tok.hasValue {
			return append(events, ArgEvent{ID: sp.opt.ID}), nil
		}
		resolvedValue, err := resolveValue(sp, tok.value)
		if err != nil {
			return nil, err
		}
		return append(events, ArgEvent{ID: sp.opt.ID, Value: resolvedValue, HasValue: true}), nil
	}
}

// matchCluster walks a -abc token character by character. A value-taking
// character consumes the remainder of the cluster as its value (with one
// leading '=' stripped), or, for a required arity with nothing left, the
// next argument verbatim.
func matchCluster(spec *Spec, tz *tokenizer, tok token, events []ArgEvent) ([]ArgEvent, error) {
	body := tok.name
	for i := 0; i < len(body); {
		c, size := utf8.DecodeRuneInString(body[i:])
		i += size

		sp, ok := spec.shorts[c]
		if !ok {
			return nil, &ParseError{Type: ErrorTypeUnknownOption, Option: "-" + string(c)}
		}

		if sp.arity == ArityNone {
			events = append(events, ArgEvent{ID: sp.opt.ID})
			continue
		}

		if rest := body[i:]; rest != "" {
			if rest[0] == '=' {
				rest = rest[1:]
			}
			resolvedValue, err := resolveValue(sp, rest)
			if err != nil {
				return nil, err
			}
			return append(events, ArgEvent{ID: sp.opt.ID, Value: resolvedValue, HasValue: true}), nil
		}

		if sp.arity == ArityOptional {
			// Optional shorts take values only from their own cluster.
			return append(events, ArgEvent{ID: sp.opt.ID}), nil
		}

		value, ok := tz.nextRaw()
		if !ok {
			return nil, &ParseError{Type: ErrorTypeMissingValue, Option: sp.display}
		}
		resolvedValue, err := resolveValue(sp, value)
		if err != nil {
			return nil, err
		}
		return append(events, ArgEvent{ID: sp.opt.ID, Value: resolvedValue, HasValue: true}), nil
	}
	return events, nil
}

// matchNumeric turns a +N/-N shorthand token into an event on its bound
// option, with the digit payload (possibly transformed) as the value.
func matchNumeric(spec *Spec, tok token, events []ArgEvent) ([]ArgEvent, error) {
	binding := spec.minus
	if tok.sign == '+' {
		binding = spec.plus
	}

	value := tok.digits
	if binding.Transform != nil {
		transformed, err := binding.Transform(tok.digits)
		if err != nil {
			return nil, &ParseError{Type: ErrorTypeInvalidValue, Option: tok.raw, Value: tok.digits}
		}
		value = transformed
	}
	return append(events, ArgEvent{ID: binding.Option, Value: value, HasValue: true}), nil
}

// resolveValue applies an option's enumerated value set, if any, to a
// supplied value. The value resolves by unambiguous prefix against the
// accepted keys and the event carries the canonical form.
func resolveValue(sp spelling, raw string) (string, error) {
	if sp.opt.Values == nil {
		return raw, nil
	}
	_, canonical, candidates, res := resolvePrefix(sp.opt.Values.table, raw)
	switch res {
	case resolved:
		return canonical, nil
	case ambiguous:
		return "", &ParseError{
			Type:       ErrorTypeAmbiguousValue,
			Option:     sp.display,
			Value:      raw,
			Candidates: candidates,
		}
	default:
		return "", &ParseError{
			Type:       ErrorTypeInvalidValue,
			Option:     sp.display,
			Value:      raw,
			Candidates: sp.opt.Values.Keys(),
		}
	}
}
