package mock

import (
	"context"

	"github.com/fwojciec/reactdict"
)

var _ reactdict.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of reactdict.BookmarkService.
type BookmarkService struct {
	AddBookmarkFn      func(ctx context.Context, term string) (*reactdict.Bookmark, error)
	RemoveBookmarkFn   func(ctx context.Context, id string) error
	FindBookmarkByIDFn func(ctx context.Context, id string) (*reactdict.Bookmark, error)
	FindBookmarksFn    func(ctx context.Context, filter reactdict.BookmarkFilter) ([]*reactdict.Bookmark, error)
}

func (s *BookmarkService) AddBookmark(ctx context.Context, term string) (*reactdict.Bookmark, error) {
	return s.AddBookmarkFn(ctx, term)
}

func (s *BookmarkService) RemoveBookmark(ctx context.Context, id string) error {
	return s.RemoveBookmarkFn(ctx, id)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*reactdict.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter reactdict.BookmarkFilter) ([]*reactdict.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}
