package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/reactdict"
	"github.com/gin-gonic/gin"
)

const suggestionReceived = "Your suggestion has been received and will be reviewed"

// handleDefine handles GET /api/define?term=.
func (s *Server) handleDefine(c *gin.Context) {
	term := strings.TrimSpace(c.Query("term"))
	if term == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Term parameter is required"})
		return
	}

	def, err := s.Lookup.Lookup(c.Request.Context(), term)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if s.Searches != nil {
		if err := s.Searches.RecordSearch(c.Request.Context(), term); err != nil {
			s.Logger.Warn("failed to record search", "term", term, "error", err)
		}
	}

	body, err := json.Marshal(def)
	if err != nil {
		s.writeError(c, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

type suggestRequest struct {
	Term    string `json:"term"`
	Details string `json:"details"`
}

// handleSuggest handles POST /api/suggest.
func (s *Server) handleSuggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Term) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Term is required"})
		return
	}

	if _, err := s.Suggestions.Suggest(c.Request.Context(), req.Term, req.Details); err != nil {
		code := reactdict.ErrorCode(err)
		if code == reactdict.EINTERNAL {
			s.Logger.Error("suggestion failed", "term", req.Term, "error", err)
		}
		c.AbortWithStatusJSON(ErrorStatusCode(code), gin.H{"success": false, "message": errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": suggestionReceived})
}

// handleTerms handles GET /api/terms, listing every complete definition.
func (s *Server) handleTerms(c *gin.Context) {
	defs, err := s.Definitions.FindDefinitions(c.Request.Context(), reactdict.DefinitionFilter{SortBy: reactdict.SortByTerm})
	if err != nil {
		s.writeError(c, err)
		return
	}

	out := make([]*reactdict.Definition, 0, len(defs))
	for _, def := range defs {
		if def.IsComplete() {
			out = append(out, def)
		}
	}
	c.JSON(http.StatusOK, out)
}

// handleTermSearch handles GET /api/terms/search?q=, returning autocomplete
// matches over known terms.
func (s *Server) handleTermSearch(c *gin.Context) {
	defs, err := s.Definitions.FindDefinitions(c.Request.Context(), reactdict.DefinitionFilter{SortBy: reactdict.SortByTerm})
	if err != nil {
		s.writeError(c, err)
		return
	}

	terms := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.IsComplete() {
			terms = append(terms, def.Term)
		}
	}

	matches := s.Matcher.Match(c.Query("q"), terms, reactdict.DefaultMatchLimit)
	if matches == nil {
		matches = []reactdict.Match{}
	}
	c.JSON(http.StatusOK, matches)
}
