// Package fuzzy implements autocomplete matching with sahilm/fuzzy.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/reactdict"
	"github.com/sahilm/fuzzy"
)

var _ reactdict.TermMatcher = (*Matcher)(nil)

// MinQueryLength is the shortest query that produces matches.
const MinQueryLength = 2

// Matcher ranks terms against a query using subsequence matching.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns at most limit terms matching query, best match first.
// Matching ignores case and every term ID is reported once.
func (m *Matcher) Match(query string, terms []string, limit int) []reactdict.Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}
	if limit <= 0 {
		limit = reactdict.DefaultMatchLimit
	}

	lowered := make([]string, len(terms))
	for i, term := range terms {
		lowered[i] = strings.ToLower(term)
	}

	seen := make(map[string]bool)
	var matches []reactdict.Match
	for _, fm := range fuzzy.Find(query, lowered) {
		term := terms[fm.Index]
		id := reactdict.TermID(term)
		if seen[id] {
			continue
		}
		seen[id] = true

		matches = append(matches, reactdict.Match{
			Term:  term,
			Index: fm.Index,
			Score: fm.Score,
		})
		if len(matches) == limit {
			break
		}
	}
	return matches
}
