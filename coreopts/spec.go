package coreopts

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValueArity states whether a particular spelling of an option takes a
// value. Arity is a property of the spelling, not the option: one logical
// option may require a value when written one way and make it optional
// when written another (mktemp's "-p DIR" vs "--tmpdir[=DIR]").
type ValueArity int

const (
	ArityNone ValueArity = iota
	ArityRequired
	ArityOptional
)

// ShortSpelling is a single-character spelling of an option.
type ShortSpelling struct {
	Char  rune
	Arity ValueArity
}

// LongSpelling is a word-like spelling of an option. Hidden spellings are
// matched exactly like visible ones but require an extra leading hyphen on
// the command line and are omitted from generated usage text.
type LongSpelling struct {
	Name   string
	Arity  ValueArity
	Hidden bool
}

// OptionSpec describes one logical option. The ID is the stable key
// attached to every event the option produces.
type OptionSpec struct {
	ID     string
	Help   string
	Shorts []ShortSpelling
	Longs  []LongSpelling
	Values *ValueSet
}

// takesValue reports whether any spelling of the option accepts a value.
func (o *OptionSpec) takesValue() bool {
	for _, s := range o.Shorts {
		if s.Arity != ArityNone {
			return true
		}
	}
	for _, l := range o.Longs {
		if l.Arity != ArityNone {
			return true
		}
	}
	return false
}

// ValueSet is an enumerated set of accepted option values, matched by
// unambiguous prefix. Each entry maps one or more accepted keys to a
// canonical value ("yes" and "force" both resolve to "always"). The table
// is ordered so ambiguity diagnostics list candidates deterministically.
type ValueSet struct {
	table *orderedmap.OrderedMap[string, string]
}

func newValueSet() *ValueSet {
	return &ValueSet{table: orderedmap.New[string, string]()}
}

func (v *ValueSet) add(canonical string, aliases ...string) {
	v.table.Set(canonical, canonical)
	for _, a := range aliases {
		v.table.Set(a, canonical)
	}
}

// Keys returns the accepted keys in declaration order.
func (v *ValueSet) Keys() []string {
	keys := make([]string, 0, v.table.Len())
	for pair := v.table.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Slot is one positional slot. Min is the number of operands the slot must
// receive; Max is the number it may receive, with Unbounded meaning no
// upper limit. A greedy slot captures every remaining token verbatim once
// its first operand is reached and disables option scanning from there on.
type Slot struct {
	Name   string
	Help   string
	Min    int
	Max    int
	Greedy bool
}

// Unbounded marks a slot with no upper operand limit.
const Unbounded = -1

// NumericShorthand binds a deprecated signed numeric form ("-20", "+5") to
// an option identity. Transform, when set, rewrites the digit payload
// before it is attached to the event.
type NumericShorthand struct {
	Option    string
	Transform func(digits string) (string, error)
}

// spelling is a resolved table entry: the option it belongs to plus the
// arity of this particular spelling.
type spelling struct {
	opt     *OptionSpec
	arity   ValueArity
	hidden  bool
	display string // spelling as the user types it, with dashes
}

// Spec is the immutable description of one utility's accepted arguments.
// A Spec is constructed once (see SpecBuilder), is read-only during
// matching, and may be shared across concurrent parses.
type Spec struct {
	name    string
	options []*OptionSpec
	slots   []Slot

	longs  *orderedmap.OrderedMap[string, spelling]
	shorts map[rune]spelling

	plus        *NumericShorthand
	minus       *NumericShorthand
	numericWins bool

	greedyIndex int // index into slots, -1 when no greedy slot
	greedyAfter int // operands claimed by slots preceding the greedy one
}

// Name returns the utility name the spec was created with.
func (s *Spec) Name() string { return s.name }

// Options returns the declared options in declaration order.
func (s *Spec) Options() []*OptionSpec { return s.options }

// Slots returns the declared positional slots in order.
func (s *Spec) Slots() []Slot { return s.slots }

// longNames returns all visible long spellings, for suggestions.
func (s *Spec) longNames() []string {
	names := make([]string, 0, s.longs.Len())
	for pair := s.longs.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.hidden {
			names = append(names, pair.Key)
		}
	}
	return names
}

// clusterExplains reports whether the body of a single-dash token (the
// part after the dash) can be read as a declared short-option cluster. A
// value-taking character explains everything after it.
func (s *Spec) clusterExplains(body string) bool {
	for _, c := range body {
		sp, ok := s.shorts[c]
		if !ok {
			return false
		}
		if sp.arity != ArityNone {
			return true
		}
	}
	return true
}
