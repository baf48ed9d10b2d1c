package coreopts

import "errors"

// ExitError is a sentinel used to request a specific exit code from
// application code, independent of any parse outcome.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// ExitCodeDefaults holds the fallback codes used when no per-category
// mapping matches.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2, the coreutils usage-error convention
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps parse errors to process exit codes. Every parse
// error category starts on the misusage code; individual categories can
// be remapped for utilities with their own conventions (timeout reserves
// 125 for its own failures).
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

// NewExitCodeManager creates a manager with the coreutils defaults.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	for _, t := range []ErrorType{
		ErrorTypeUnknownOption, ErrorTypeAmbiguousOption, ErrorTypeAmbiguousValue,
		ErrorTypeMissingValue, ErrorTypeUnexpectedValue, ErrorTypeInvalidValue,
		ErrorTypeMissingOperand, ErrorTypeExcessOperand,
	} {
		m.codesByType[t] = m.defaults.MisusageError
	}
	return m
}

// Define overrides the exit code for one parse error category.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	m.codesByType[typ] = code
	return m
}

// Default replaces the fallback codes.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	return m
}

// Code resolves an error to an exit code. Precedence: an explicit
// ExitError, then the parse error category mapping, then the general
// error default. A nil error is success.
func (m *ExitCodeManager) Code(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := m.codesByType[parseErr.Type]; ok {
			return code
		}
		return m.defaults.MisusageError
	}

	return m.defaults.GeneralError
}
