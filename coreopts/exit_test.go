package coreopts

import (
	"errors"
	"fmt"
	"testing"
)

// TestExitCodeDefaults tests the stock code mapping.
func TestExitCodeDefaults(t *testing.T) {
	m := NewExitCodeManager()

	if got := m.Code(nil); got != 0 {
		t.Errorf("expected 0 for nil, got %d", got)
	}
	if got := m.Code(&ParseError{Type: ErrorTypeUnknownOption}); got != 2 {
		t.Errorf("expected 2 for parse error, got %d", got)
	}
	if got := m.Code(errors.New("io failure")); got != 1 {
		t.Errorf("expected 1 for plain error, got %d", got)
	}
}

// TestExitCodeOverrides tests per-category remapping.
func TestExitCodeOverrides(t *testing.T) {
	m := NewExitCodeManager().
		Define(ErrorTypeMissingOperand, 125).
		Define(ErrorTypeUnknownOption, 125)

	if got := m.Code(&ParseError{Type: ErrorTypeMissingOperand}); got != 125 {
		t.Errorf("expected 125, got %d", got)
	}
	if got := m.Code(&ParseError{Type: ErrorTypeExcessOperand}); got != 2 {
		t.Errorf("expected untouched category at 2, got %d", got)
	}
}

// TestExitCodeWrappedParseError tests resolution through error wrapping.
func TestExitCodeWrappedParseError(t *testing.T) {
	m := NewExitCodeManager()
	err := fmt.Errorf("parsing arguments: %w", &ParseError{Type: ErrorTypeMissingValue})
	if got := m.Code(err); got != 2 {
		t.Errorf("expected 2 through wrapping, got %d", got)
	}
}

// TestExitCodeExitError tests that an explicit ExitError wins.
func TestExitCodeExitError(t *testing.T) {
	m := NewExitCodeManager()
	err := &ExitError{Code: 42, Err: errors.New("done")}
	if got := m.Code(err); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if err.Error() != "done" {
		t.Errorf("expected wrapped message, got %q", err.Error())
	}
}
