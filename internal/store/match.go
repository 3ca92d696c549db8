package store

import (
	"regexp"
	"strings"

	"github.com/noot-app/nut/internal/types"
)

type keyed interface {
	Key() string
}

// indexOf returns the position of the record named exactly name, or -1
func indexOf[T keyed](records []T, name string) int {
	for i, r := range records {
		if r.Key() == name {
			return i
		}
	}
	return -1
}

// match resolves pattern against the record names.
// An exact name always wins. Otherwise pattern is a case-insensitive regular
// expression, or a case-insensitive substring when it does not compile.
func match[T keyed](records []T, pattern string) (int, error) {
	if i := indexOf(records, pattern); i >= 0 {
		return i, nil
	}

	matches := substringMatcher(pattern)
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		matches = re.MatchString
	}

	var hits []int
	for i, r := range records {
		if matches(r.Key()) {
			hits = append(hits, i)
		}
	}

	switch len(hits) {
	case 0:
		return -1, types.ErrNotFound
	case 1:
		return hits[0], nil
	default:
		candidates := make([]string, 0, len(hits))
		for _, i := range hits {
			candidates = append(candidates, records[i].Key())
		}
		return -1, &types.AmbiguousError{Pattern: pattern, Candidates: candidates}
	}
}

func substringMatcher(pattern string) func(string) bool {
	p := strings.ToLower(pattern)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), p)
	}
}
