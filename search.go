package reactdict

import (
	"context"
	"time"
)

// DefaultRecentSearches is the number of recent searches shown to users.
const DefaultRecentSearches = 5

// Search is a single entry in the search history.
type Search struct {
	ID         string    `json:"id"`
	Term       string    `json:"term"`
	SearchedAt time.Time `json:"searchedAt"`
}

// SearchService records and lists recent searches.
type SearchService interface {
	// RecordSearch appends term to the search history.
	RecordSearch(ctx context.Context, term string) error

	// RecentSearches returns up to n searches, newest first, with terms
	// de-duplicated case-insensitively.
	RecentSearches(ctx context.Context, n int) ([]*Search, error)

	// ClearSearches removes the whole search history.
	ClearSearches(ctx context.Context) error
}
