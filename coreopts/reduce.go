package coreopts

import "math"

// Fold reduces an event stream into a settings value by applying each
// event in order. "Later wins" falls out of the ordering: a repeated or
// contradictory option simply overwrites whatever an earlier event set,
// with no conflict detection. On the first apply error the zero settings
// value is returned, never a half-folded one.
func Fold[S any](initial S, events []ArgEvent, apply func(*S, ArgEvent) error) (S, error) {
	state := initial
	for _, e := range events {
		if err := apply(&state, e); err != nil {
			var zero S
			return zero, err
		}
	}
	return state, nil
}

// ParseAndFold parses args against the spec and folds the resulting
// events in one call.
func ParseAndFold[S any](spec *Spec, args []string, initial S, apply func(*S, ArgEvent) error) (S, error) {
	result, err := Parse(spec, args)
	if err != nil {
		var zero S
		return zero, err
	}
	return Fold(initial, result.Events, apply)
}

// invalid builds the error the typed accessors report for an
// unconvertible value.
func (e ArgEvent) invalid() error {
	return &ParseError{Type: ErrorTypeInvalidValue, Option: e.ID, Value: e.Value}
}

// Int converts the event's value as a signed decimal or 0x-prefixed hex
// integer using direct ASCII math.
func (e ArgEvent) Int() (int, error) {
	s := e.Value
	if len(s) == 0 {
		return 0, e.invalid()
	}

	negative := false
	start := 0
	switch s[0] {
	case '-':
		negative = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(s) {
		return 0, e.invalid()
	}

	rest := s[start:]
	var (
		result int
		err    error
	)
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		result, err = e.parseHex(rest[2:])
	} else {
		result, err = e.parseDecimal(rest)
	}
	if err != nil {
		return 0, err
	}
	if negative {
		result = -result
	}
	return result, nil
}

// Uint64 converts the event's value as an unsigned decimal integer.
func (e ArgEvent) Uint64() (uint64, error) {
	s := e.Value
	if len(s) == 0 {
		return 0, e.invalid()
	}
	var result uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, e.invalid()
		}
		digit := uint64(c - '0')
		if result > (math.MaxUint64-digit)/10 {
			return 0, e.invalid()
		}
		result = result*10 + digit
	}
	return result, nil
}

// Float converts the event's value as a plain decimal float ("3.14").
func (e ArgEvent) Float() (float64, error) {
	s := e.Value
	if len(s) == 0 {
		return 0, e.invalid()
	}

	var (
		result       float64
		decimalPlace = 1.0
		negative     bool
		afterPoint   bool
		sawDigit     bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i == 0 {
			negative = true
			continue
		}
		if c == '.' {
			if afterPoint {
				return 0, e.invalid()
			}
			afterPoint = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, e.invalid()
		}
		sawDigit = true
		digit := float64(c - '0')
		if afterPoint {
			decimalPlace *= 10.0
			result += digit / decimalPlace
		} else {
			result = result*10.0 + digit
		}
	}
	if !sawDigit {
		return 0, e.invalid()
	}
	if negative {
		result = -result
	}
	return result, nil
}

func (e ArgEvent) parseDecimal(s string) (int, error) {
	if len(s) == 0 {
		return 0, e.invalid()
	}
	result := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, e.invalid()
		}
		digit := int(c - '0')
		if result > (math.MaxInt-digit)/10 {
			return 0, e.invalid()
		}
		result = result*10 + digit
	}
	return result, nil
}

func (e ArgEvent) parseHex(s string) (int, error) {
	if len(s) == 0 {
		return 0, e.invalid()
	}
	result := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var digit int
		switch {
		case c >= '0' && c <= '9':
			digit = int(c - '0')
		case c >= 'A' && c <= 'F':
			digit = int(c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			digit = int(c - 'a' + 10)
		default:
			return 0, e.invalid()
		}
		if result > (math.MaxInt-digit)/16 {
			return 0, e.invalid()
		}
		result = result*16 + digit
	}
	return result, nil
}
