package http

import (
	"net/http"

	"github.com/fwojciec/reactdict"
	"github.com/gin-gonic/gin"
)

// handleSearches handles GET /api/searches.
func (s *Server) handleSearches(c *gin.Context) {
	searches, err := s.Searches.RecentSearches(c.Request.Context(), reactdict.DefaultRecentSearches)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if searches == nil {
		searches = []*reactdict.Search{}
	}
	c.JSON(http.StatusOK, searches)
}

// handleClearSearches handles DELETE /api/searches.
func (s *Server) handleClearSearches(c *gin.Context) {
	if err := s.Searches.ClearSearches(c.Request.Context()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleBookmarks handles GET /api/bookmarks.
func (s *Server) handleBookmarks(c *gin.Context) {
	bookmarks, err := s.Bookmarks.FindBookmarks(c.Request.Context(), reactdict.BookmarkFilter{})
	if err != nil {
		s.writeError(c, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []*reactdict.Bookmark{}
	}
	c.JSON(http.StatusOK, bookmarks)
}

type bookmarkRequest struct {
	Term string `json:"term"`
}

// handleAddBookmark handles POST /api/bookmarks.
func (s *Server) handleAddBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, reactdict.Errorf(reactdict.EINVALID, "Invalid request body"))
		return
	}

	b, err := s.Bookmarks.AddBookmark(c.Request.Context(), req.Term)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// handleBookmark handles GET /api/bookmarks/:id.
func (s *Server) handleBookmark(c *gin.Context) {
	b, err := s.Bookmarks.FindBookmarkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// handleRemoveBookmark handles DELETE /api/bookmarks/:id.
func (s *Server) handleRemoveBookmark(c *gin.Context) {
	if err := s.Bookmarks.RemoveBookmark(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
