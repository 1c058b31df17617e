package http

import (
	"net/http"

	"github.com/fwojciec/reactdict"
	"github.com/gin-gonic/gin"
)

// handleReview handles GET /api/admin/terms?filter=all|suggested|moderated.
func (s *Server) handleReview(c *gin.Context) {
	filter, err := reactdict.ParseReviewFilter(c.Query("filter"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	defs, err := s.Moderation.Review(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if defs == nil {
		defs = []*reactdict.Definition{}
	}
	c.JSON(http.StatusOK, defs)
}

// handleApprove handles POST /api/admin/terms/:id/approve.
func (s *Server) handleApprove(c *gin.Context) {
	def, err := s.Moderation.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// handleReject handles POST /api/admin/terms/:id/reject.
func (s *Server) handleReject(c *gin.Context) {
	def, err := s.Moderation.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// handleDeleteTerm handles DELETE /api/admin/terms/:id.
func (s *Server) handleDeleteTerm(c *gin.Context) {
	if err := s.Moderation.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
