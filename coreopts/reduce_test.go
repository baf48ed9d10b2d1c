package coreopts

import (
	"errors"
	"testing"
)

type headSettings struct {
	Lines   int
	Quiet   bool
	Verbose bool
	Files   []string
}

func headSpec() *Spec {
	return NewSpec("head").
		Option("lines").ShortValue('n').LongValue("lines").Back().
		Option("quiet").Short('q').Long("quiet").Long("silent").Back().
		Option("verbose").Short('v').Long("verbose").Back().
		Positional("file").Range(0, Unbounded).Back().
		MustBuild()
}

func applyHead(s *headSettings, e ArgEvent) error {
	switch e.ID {
	case "lines":
		n, err := e.Int()
		if err != nil {
			return err
		}
		s.Lines = n
	case "quiet":
		s.Quiet = true
		s.Verbose = false
	case "verbose":
		s.Verbose = true
		s.Quiet = false
	case "file":
		s.Files = append(s.Files, e.Value)
	}
	return nil
}

// TestFoldLaterWins tests that a repeated option simply overwrites and
// contradictory flags resolve to whichever came last.
func TestFoldLaterWins(t *testing.T) {
	settings, err := ParseAndFold(headSpec(),
		[]string{"-n", "5", "--quiet", "-n", "20", "-v", "a.txt"},
		headSettings{Lines: 10}, applyHead)
	if err != nil {
		t.Fatalf("ParseAndFold failed: %v", err)
	}

	if settings.Lines != 20 {
		t.Errorf("expected last -n to win with 20, got %d", settings.Lines)
	}
	if settings.Quiet || !settings.Verbose {
		t.Errorf("expected verbose to win, got quiet=%v verbose=%v", settings.Quiet, settings.Verbose)
	}
	if len(settings.Files) != 1 || settings.Files[0] != "a.txt" {
		t.Errorf("expected files [a.txt], got %v", settings.Files)
	}
}

// TestFoldKeepsInitialDefaults tests that untouched fields keep the
// initial settings value.
func TestFoldKeepsInitialDefaults(t *testing.T) {
	settings, err := ParseAndFold(headSpec(), nil, headSettings{Lines: 10}, applyHead)
	if err != nil {
		t.Fatalf("ParseAndFold failed: %v", err)
	}
	if settings.Lines != 10 {
		t.Errorf("expected default 10, got %d", settings.Lines)
	}
}

// TestFoldErrorReturnsZeroSettings tests that an apply error yields the
// zero settings value, never a partial fold.
func TestFoldErrorReturnsZeroSettings(t *testing.T) {
	settings, err := ParseAndFold(headSpec(),
		[]string{"-q", "-n", "banana"},
		headSettings{Lines: 10}, applyHead)
	if err == nil {
		t.Fatal("expected conversion error")
	}
	if settings.Lines != 0 || settings.Quiet {
		t.Errorf("expected zero settings on error, got %+v", settings)
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Type != ErrorTypeInvalidValue {
		t.Errorf("expected invalid value error, got %v", err)
	}
}

// TestFoldStandalone tests Fold over a hand-built event stream.
func TestFoldStandalone(t *testing.T) {
	events := []ArgEvent{
		{ID: "lines", Value: "3", HasValue: true},
		{ID: "file", Value: "x", HasValue: true},
	}
	settings, err := Fold(headSettings{}, events, applyHead)
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if settings.Lines != 3 || len(settings.Files) != 1 {
		t.Errorf("unexpected fold result %+v", settings)
	}
}

// TestEventInt tests decimal, signed, and hex integer conversion.
func TestEventInt(t *testing.T) {
	cases := []struct {
		value string
		want  int
		ok    bool
	}{
		{"0", 0, true},
		{"123", 123, true},
		{"-45", -45, true},
		{"+7", 7, true},
		{"0xFF", 255, true},
		{"-0x10", -16, true},
		{"", 0, false},
		{"12a", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
	}
	for _, c := range cases {
		e := ArgEvent{ID: "lines", Value: c.value, HasValue: true}
		got, err := e.Int()
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("Int(%q): expected %d, got %d err=%v", c.value, c.want, got, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Int(%q): expected error", c.value)
		}
	}
}

// TestEventUint64 tests unsigned conversion including overflow.
func TestEventUint64(t *testing.T) {
	e := ArgEvent{ID: "bytes", Value: "18446744073709551615", HasValue: true}
	got, err := e.Uint64()
	if err != nil || got != 18446744073709551615 {
		t.Errorf("expected max uint64, got %d err=%v", got, err)
	}

	e.Value = "18446744073709551616"
	if _, err := e.Uint64(); err == nil {
		t.Error("expected overflow error")
	}

	e.Value = "-1"
	if _, err := e.Uint64(); err == nil {
		t.Error("expected sign rejection")
	}
}

// TestEventFloat tests float conversion.
func TestEventFloat(t *testing.T) {
	e := ArgEvent{ID: "interval", Value: "3.14", HasValue: true}
	got, err := e.Float()
	if err != nil || got < 3.139 || got > 3.141 {
		t.Errorf("expected 3.14, got %v err=%v", got, err)
	}

	e.Value = "-0.5"
	got, err = e.Float()
	if err != nil || got != -0.5 {
		t.Errorf("expected -0.5, got %v err=%v", got, err)
	}

	for _, bad := range []string{"", ".", "1.2.3", "x"} {
		e.Value = bad
		if _, err := e.Float(); err == nil {
			t.Errorf("Float(%q): expected error", bad)
		}
	}
}

// TestEventConversionError tests that accessor errors carry the event's
// identity and raw value.
func TestEventConversionError(t *testing.T) {
	e := ArgEvent{ID: "lines", Value: "many", HasValue: true}
	_, err := e.Int()

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Type != ErrorTypeInvalidValue || pe.Option != "lines" || pe.Value != "many" {
		t.Errorf("unexpected error fields %+v", pe)
	}
}
