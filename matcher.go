package reactdict

// DefaultMatchLimit is the number of autocomplete matches shown to users.
const DefaultMatchLimit = 5

// Match is a single autocomplete result.
type Match struct {
	Term  string `json:"term"`
	Index int    `json:"refIndex"`
	Score int    `json:"score"`
}

// TermMatcher performs fuzzy matching of a query against known terms.
type TermMatcher interface {
	// Match returns at most limit terms matching query, best match first.
	// Queries shorter than two characters return no matches.
	Match(query string, terms []string, limit int) []Match
}
