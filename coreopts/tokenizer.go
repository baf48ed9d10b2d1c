package coreopts

import (
	"strings"

	"github.com/dzonerzy/go-coreopts/internal/intern"
)

// tokenKind classifies one command-line token by shape.
type tokenKind int

const (
	tokFree       tokenKind = iota // operand candidate
	tokLong                        // --name or --name=value
	tokCluster                     // -abc short option cluster
	tokNumeric                     // +20 or -20 bound to a numeric shorthand
	tokTerminator                  // the lone "--"
)

// token is one classified argument. Classification is purely lexical plus
// the spec-sensitive numeric/cluster split; resolving names against the
// spec's tables is the matcher's job.
type token struct {
	raw      string
	name     string // long name after the dashes, or cluster body
	value    string // inline =value for long tokens
	hasValue bool   // distinguishes --suffix= (empty value) from --suffix
	digits   string // payload for numeric tokens
	sign     byte   // '+' or '-' for numeric tokens
	kind     tokenKind
}

// tokenizer walks argv lazily. Laziness matters: whether a token is a
// value or an operand depends on what the matcher did with the token
// before it, so nothing may be classified ahead of consumption.
type tokenizer struct {
	spec *Spec
	args []string
	pos  int
	term bool // a "--" was consumed; everything after is free
}

func newTokenizer(spec *Spec, args []string) tokenizer {
	return tokenizer{spec: spec, args: args}
}

// next consumes and classifies the next token. The second return is false
// once the input is exhausted.
func (t *tokenizer) next() (token, bool) {
	if t.pos >= len(t.args) {
		return token{}, false
	}
	raw := t.args[t.pos]
	t.pos++

	if t.term || raw == "" || raw == "-" {
		return token{raw: raw, kind: tokFree}, true
	}

	if raw == "--" {
		t.term = true
		return token{raw: raw, kind: tokTerminator}, true
	}

	if strings.HasPrefix(raw, "--") {
		name, value, hasValue := cutValue(raw[2:])
		return token{
			raw:      raw,
			name:     intern.Intern(name),
			value:    value,
			hasValue: hasValue,
			kind:     tokLong,
		}, true
	}

	if raw[0] == '+' {
		if t.spec.plus != nil && allDigits(raw[1:]) {
			return token{raw: raw, digits: raw[1:], sign: '+', kind: tokNumeric}, true
		}
		return token{raw: raw, kind: tokFree}, true
	}

	if raw[0] != '-' {
		return token{raw: raw, kind: tokFree}, true
	}

	// Single dash with content. A non-digit body is always a cluster
	// attempt. A digit-leading body is claimed by the '-' numeric
	// shorthand when one is bound and the digits cannot already be read
	// as a declared cluster (NumericWins flips that tie-break); failing
	// both readings it stays a free value, so negative numbers pass
	// through as operands.
	body := raw[1:]
	if body[0] >= '0' && body[0] <= '9' {
		if t.spec.minus != nil && allDigits(body) &&
			(t.spec.numericWins || !t.spec.clusterExplains(body)) {
			return token{raw: raw, digits: body, sign: '-', kind: tokNumeric}, true
		}
		if _, ok := t.spec.shorts[rune(body[0])]; !ok {
			return token{raw: raw, kind: tokFree}, true
		}
	}

	return token{raw: raw, name: body, kind: tokCluster}, true
}

// nextRaw consumes the next argument verbatim, as the required value of
// the option just matched. No classification applies: "-x" and "--" are
// ordinary values here.
func (t *tokenizer) nextRaw() (string, bool) {
	if t.pos >= len(t.args) {
		return "", false
	}
	raw := t.args[t.pos]
	t.pos++
	return raw, true
}

// rest consumes everything remaining, verbatim, for a greedy slot.
func (t *tokenizer) rest() []string {
	r := t.args[t.pos:]
	t.pos = len(t.args)
	return r
}

// cutValue splits a long option body at the first '='. The presence of
// '=' is significant even with nothing after it: "suffix=" carries an
// empty value while "suffix" carries none.
func cutValue(body string) (name, value string, hasValue bool) {
	return strings.Cut(body, "=")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
