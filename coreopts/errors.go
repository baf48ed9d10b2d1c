package coreopts

import "strings"

// ErrorType categorizes parse failures. The categories drive exit-code
// mapping (via ExitCodeManager) and let callers react without string
// matching on messages.
type ErrorType string

const (
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeAmbiguousOption ErrorType = "ambiguous_option"
	ErrorTypeAmbiguousValue  ErrorType = "ambiguous_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingOperand  ErrorType = "missing_operand"
	ErrorTypeExcessOperand   ErrorType = "excess_operand"
)

// ParseError is the single error type produced by the parsing pipeline.
// Every error is fatal to the parse that produced it; there is no local
// recovery. The fields carry the offending raw text so callers can build
// their own diagnostics without re-parsing the message.
type ParseError struct {
	Type       ErrorType
	Option     string   // option spelling as typed, including dashes ("-c", "--colo")
	Value      string   // offending raw value, when one is involved
	Slot       string   // positional slot name for operand errors
	Candidates []string // conflicting names for ambiguity errors, in table order
	Suggestion string   // "did you mean" candidate for unknown options, may be empty
}

func (e *ParseError) Error() string {
	var b strings.Builder
	switch e.Type {
	case ErrorTypeUnknownOption:
		b.WriteString("unrecognized option '")
		b.WriteString(e.Option)
		b.WriteString("'")
		if e.Suggestion != "" {
			b.WriteString("; did you mean '")
			b.WriteString(e.Suggestion)
			b.WriteString("'?")
		}
	case ErrorTypeAmbiguousOption:
		b.WriteString("option '")
		b.WriteString(e.Option)
		b.WriteString("' is ambiguous; possibilities:")
		for _, c := range e.Candidates {
			b.WriteString(" '")
			b.WriteString(c)
			b.WriteString("'")
		}
	case ErrorTypeAmbiguousValue:
		b.WriteString("ambiguous argument '")
		b.WriteString(e.Value)
		b.WriteString("' for '")
		b.WriteString(e.Option)
		b.WriteString("'; possibilities:")
		for _, c := range e.Candidates {
			b.WriteString(" '")
			b.WriteString(c)
			b.WriteString("'")
		}
	case ErrorTypeMissingValue:
		b.WriteString("option '")
		b.WriteString(e.Option)
		b.WriteString("' requires an argument")
	case ErrorTypeUnexpectedValue:
		b.WriteString("option '")
		b.WriteString(e.Option)
		b.WriteString("' doesn't allow an argument")
	case ErrorTypeInvalidValue:
		b.WriteString("invalid argument '")
		b.WriteString(e.Value)
		b.WriteString("' for '")
		b.WriteString(e.Option)
		b.WriteString("'")
		if len(e.Candidates) > 0 {
			b.WriteString("\nValid arguments are:")
			for _, c := range e.Candidates {
				b.WriteString("\n  - '")
				b.WriteString(c)
				b.WriteString("'")
			}
		}
	case ErrorTypeMissingOperand:
		b.WriteString("missing operand")
		if e.Slot != "" {
			b.WriteString(" '")
			b.WriteString(e.Slot)
			b.WriteString("'")
		}
	case ErrorTypeExcessOperand:
		b.WriteString("extra operand '")
		b.WriteString(e.Value)
		b.WriteString("'")
	default:
		b.WriteString("parse error")
	}
	return b.String()
}

// NewParseError creates a ParseError with the given type; the remaining
// fields are filled by the call sites that know them.
func NewParseError(typ ErrorType) *ParseError {
	return &ParseError{Type: typ}
}
