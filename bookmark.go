package reactdict

import (
	"context"
	"time"
)

// Bookmark is a saved pointer from a term's ID to its display name.
type Bookmark struct {
	ID      string    `json:"id"`
	Term    string    `json:"term"`
	AddedAt time.Time `json:"addedAt"`
}

// BookmarkService represents a service for managing bookmarks.
type BookmarkService interface {
	// AddBookmark saves a bookmark for term. Adding an existing bookmark
	// refreshes its AddedAt time.
	// Returns EINVALID if term is blank.
	AddBookmark(ctx context.Context, term string) (*Bookmark, error)

	// RemoveBookmark deletes the bookmark with the given ID.
	// Returns ENOTFOUND if the bookmark does not exist.
	RemoveBookmark(ctx context.Context, id string) error

	// FindBookmarkByID retrieves a bookmark by ID.
	// Returns ENOTFOUND if the term is not bookmarked.
	FindBookmarkByID(ctx context.Context, id string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks, most recently added first.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
