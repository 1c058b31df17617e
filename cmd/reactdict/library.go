package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/reactdict"
)

// Run executes the bookmark add command.
func (c *BookmarkAddCmd) Run(deps *Dependencies) error {
	b, err := deps.Bookmarks.AddBookmark(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Bookmarked %q (id: %s)\n", b.Term, b.ID)
	return nil
}

// Run executes the bookmark rm command.
func (c *BookmarkRmCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.RemoveBookmark(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed bookmark %q\n", c.ID)
	return nil
}

// Run executes the bookmark ls command.
func (c *BookmarkLsCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, reactdict.BookmarkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks. Use 'reactdict bookmark add' to save one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", b.ID, b.Term)
	}
	return nil
}

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.Searches.ClearSearches(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Search history cleared.")
		return nil
	}

	searches, err := deps.Searches.RecentSearches(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No recent searches.")
		return nil
	}

	for _, s := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.SearchedAt.Local().Format(time.DateTime), s.Term)
	}
	return nil
}
