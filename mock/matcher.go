package mock

import "github.com/fwojciec/reactdict"

var _ reactdict.TermMatcher = (*TermMatcher)(nil)

// TermMatcher is a mock implementation of reactdict.TermMatcher.
type TermMatcher struct {
	MatchFn func(query string, terms []string, limit int) []reactdict.Match
}

func (m *TermMatcher) Match(query string, terms []string, limit int) []reactdict.Match {
	return m.MatchFn(query, terms, limit)
}
