package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/reactdict"
)

// Compile-time interface verification.
var _ reactdict.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements reactdict.BookmarkService using SQLite.
type BookmarkService struct {
	db  *DB
	now func() time.Time
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db, now: time.Now}
}

// AddBookmark saves a bookmark for term, refreshing AddedAt if it exists.
func (s *BookmarkService) AddBookmark(ctx context.Context, term string) (*reactdict.Bookmark, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "bookmark term required")
	}

	b := &reactdict.Bookmark{
		ID:      reactdict.TermID(term),
		Term:    term,
		AddedAt: s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, term, added_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET term = excluded.term, added_at = excluded.added_at
	`, b.ID, b.Term, formatTime(b.AddedAt))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveBookmark deletes the bookmark with the given ID.
func (s *BookmarkService) RemoveBookmark(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return reactdict.Errorf(reactdict.ENOTFOUND, "bookmark not found")
	}
	return nil
}

// FindBookmarkByID retrieves a bookmark by ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*reactdict.Bookmark, error) {
	var b reactdict.Bookmark
	var addedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, term, added_at FROM bookmarks WHERE id = ?
	`, id).Scan(&b.ID, &b.Term, &addedAt)
	if err == sql.ErrNoRows {
		return nil, reactdict.Errorf(reactdict.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}

	if b.AddedAt, err = parseTime(addedAt, "added_at"); err != nil {
		return nil, err
	}
	return &b, nil
}

// FindBookmarks retrieves bookmarks, most recently added first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter reactdict.BookmarkFilter) ([]*reactdict.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, term, added_at FROM bookmarks ORDER BY added_at DESC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*reactdict.Bookmark
	for rows.Next() {
		var b reactdict.Bookmark
		var addedAt string
		if err := rows.Scan(&b.ID, &b.Term, &addedAt); err != nil {
			return nil, err
		}
		if b.AddedAt, err = parseTime(addedAt, "added_at"); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &b)
	}

	return bookmarks, rows.Err()
}
