package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/reactdict"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ reactdict.SearchService = (*SearchService)(nil)

// DefaultHistorySize is the number of searches kept before old ones are pruned.
const DefaultHistorySize = 100

// SearchService implements reactdict.SearchService using SQLite.
type SearchService struct {
	db  *DB
	now func() time.Time

	// HistorySize bounds the stored history. Zero disables pruning.
	HistorySize int
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db, now: time.Now, HistorySize: DefaultHistorySize}
}

// RecordSearch appends term to the search history.
func (s *SearchService) RecordSearch(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return reactdict.Errorf(reactdict.EINVALID, "search term required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, term, normalized, searched_at) VALUES (?, ?, ?, ?)
	`, uuid.New().String(), term, reactdict.NormalizeTerm(term), formatTime(s.now()))
	if err != nil {
		return err
	}

	if s.HistorySize > 0 {
		_, err = s.db.ExecContext(ctx, `
			DELETE FROM searches WHERE seq <= (SELECT MAX(seq) FROM searches) - ?
		`, s.HistorySize)
	}
	return err
}

// RecentSearches returns up to n distinct searches, newest first.
func (s *SearchService) RecentSearches(ctx context.Context, n int) ([]*reactdict.Search, error) {
	if n <= 0 {
		n = reactdict.DefaultRecentSearches
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, term, searched_at FROM searches s
		WHERE seq = (SELECT MAX(seq) FROM searches WHERE normalized = s.normalized)
		ORDER BY seq DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*reactdict.Search
	for rows.Next() {
		var search reactdict.Search
		var searchedAt string
		if err := rows.Scan(&search.ID, &search.Term, &searchedAt); err != nil {
			return nil, err
		}
		if search.SearchedAt, err = parseTime(searchedAt, "searched_at"); err != nil {
			return nil, err
		}
		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

// ClearSearches removes the whole search history.
func (s *SearchService) ClearSearches(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM searches")
	return err
}
