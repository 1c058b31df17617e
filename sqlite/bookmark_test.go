package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkService_AddBookmark(t *testing.T) {
	t.Parallel()

	t.Run("derives ID from term", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		b, err := svc.AddBookmark(context.Background(), " React Router ")
		require.NoError(t, err)
		assert.Equal(t, "react-router", b.ID)
		assert.Equal(t, "React Router", b.Term)
		assert.False(t, b.AddedAt.IsZero())
	})

	t.Run("re-adding refreshes time without duplicating", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		svc.SetNow(clock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		ctx := context.Background()

		first, err := svc.AddBookmark(ctx, "useState")
		require.NoError(t, err)
		second, err := svc.AddBookmark(ctx, "useState")
		require.NoError(t, err)

		bookmarks, err := svc.FindBookmarks(ctx, reactdict.BookmarkFilter{})
		require.NoError(t, err)
		require.Len(t, bookmarks, 1)
		assert.True(t, bookmarks[0].AddedAt.Equal(second.AddedAt))
		assert.True(t, second.AddedAt.After(first.AddedAt))
	})

	t.Run("rejects blank term", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		_, err := svc.AddBookmark(context.Background(), "  ")
		require.Error(t, err)
		assert.Equal(t, reactdict.EINVALID, reactdict.ErrorCode(err))
	})
}

func TestBookmarkService_FindBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("returns most recently added first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		svc.SetNow(clock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		ctx := context.Background()

		for _, term := range []string{"props", "state", "JSX"} {
			_, err := svc.AddBookmark(ctx, term)
			require.NoError(t, err)
		}

		bookmarks, err := svc.FindBookmarks(ctx, reactdict.BookmarkFilter{})
		require.NoError(t, err)
		require.Len(t, bookmarks, 3)
		assert.Equal(t, "JSX", bookmarks[0].Term)
		assert.Equal(t, "state", bookmarks[1].Term)
		assert.Equal(t, "props", bookmarks[2].Term)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		for _, term := range []string{"a1", "a2", "a3"} {
			_, err := svc.AddBookmark(ctx, term)
			require.NoError(t, err)
		}

		bookmarks, err := svc.FindBookmarks(ctx, reactdict.BookmarkFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, bookmarks, 2)
	})
}

func TestBookmarkService_FindBookmarkByID(t *testing.T) {
	t.Parallel()

	t.Run("returns bookmark when present", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		_, err := svc.AddBookmark(ctx, "useCallback")
		require.NoError(t, err)

		b, err := svc.FindBookmarkByID(ctx, "usecallback")
		require.NoError(t, err)
		assert.Equal(t, "useCallback", b.Term)
	})

	t.Run("returns ENOTFOUND when not bookmarked", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		_, err := svc.FindBookmarkByID(context.Background(), "usecallback")
		require.Error(t, err)
		assert.Equal(t, reactdict.ENOTFOUND, reactdict.ErrorCode(err))
	})
}

func TestBookmarkService_RemoveBookmark(t *testing.T) {
	t.Parallel()

	t.Run("removes bookmark", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		b, err := svc.AddBookmark(ctx, "memo")
		require.NoError(t, err)

		require.NoError(t, svc.RemoveBookmark(ctx, b.ID))

		_, err = svc.FindBookmarkByID(ctx, b.ID)
		assert.Equal(t, reactdict.ENOTFOUND, reactdict.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when missing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		err := svc.RemoveBookmark(context.Background(), "memo")
		require.Error(t, err)
		assert.Equal(t, reactdict.ENOTFOUND, reactdict.ErrorCode(err))
	})
}
