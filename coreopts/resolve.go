package coreopts

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// resolution is the outcome of a prefix lookup.
type resolution int

const (
	resolved resolution = iota
	noMatch
	ambiguous
)

// resolvePrefix looks up query in an ordered table by unambiguous prefix.
// An exact match always wins, even when it is also a prefix of other keys
// ("--color" with both "color" and "colors" declared). Otherwise a single
// key with query as prefix resolves; several such keys are ambiguous and
// returned as candidates in table order. The same rule serves both long
// option names and enumerated value sets.
func resolvePrefix[V any](table *orderedmap.OrderedMap[string, V], query string) (string, V, []string, resolution) {
	if v, ok := table.Get(query); ok {
		return query, v, nil, resolved
	}

	var (
		key        string
		value      V
		candidates []string
	)
	for pair := table.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, query) {
			candidates = append(candidates, pair.Key)
			key, value = pair.Key, pair.Value
		}
	}

	var zero V
	switch len(candidates) {
	case 0:
		return "", zero, nil, noMatch
	case 1:
		return key, value, nil, resolved
	default:
		return "", zero, candidates, ambiguous
	}
}
