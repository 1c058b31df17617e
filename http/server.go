// Package http provides the JSON API server for the dictionary and an
// HTTP implementation of reactdict.Fetcher for reference pages.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/reactdict"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server shuts down.
const ShutdownTimeout = 5 * time.Second

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server serves the dictionary API and the static front end.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Bind address to open.
	Addr string

	// StaticDir holds the built front end. Unknown non-API routes fall back
	// to its index.html. Empty disables static serving.
	StaticDir string

	// AdminToken, when set, is required as a bearer token on admin routes.
	AdminToken string

	// Limiter throttles model-backed endpoints per client. Nil disables it.
	Limiter *ClientLimiter

	Logger *slog.Logger

	Lookup      reactdict.Lookup
	Suggestions reactdict.SuggestionService
	Moderation  reactdict.ModerationService
	Definitions reactdict.DefinitionService
	Bookmarks   reactdict.BookmarkService
	Searches    reactdict.SearchService
	Matcher     reactdict.TermMatcher
}

// NewServer returns a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		router:  gin.New(),
		Limiter: NewClientLimiter(DefaultClientRPS, DefaultClientBurst),
		Logger:  slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.Use(s.requestID(), s.accessLog(), s.recovery())

	api := s.router.Group("/api")
	{
		limited := api.Group("", s.rateLimit())
		limited.GET("/define", s.handleDefine)
		limited.POST("/suggest", s.handleSuggest)

		api.GET("/terms", s.handleTerms)
		api.GET("/terms/search", s.handleTermSearch)

		api.GET("/searches", s.handleSearches)
		api.DELETE("/searches", s.handleClearSearches)

		api.GET("/bookmarks", s.handleBookmarks)
		api.POST("/bookmarks", s.handleAddBookmark)
		api.GET("/bookmarks/:id", s.handleBookmark)
		api.DELETE("/bookmarks/:id", s.handleRemoveBookmark)

		admin := api.Group("/admin", s.requireAdmin())
		admin.GET("/terms", s.handleReview)
		admin.POST("/terms/:id/approve", s.handleApprove)
		admin.POST("/terms/:id/reject", s.handleReject)
		admin.DELETE("/terms/:id", s.handleDeleteTerm)
	}

	s.router.GET("/healthz", s.handleHealth)
	s.router.NoRoute(s.handleNoRoute)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr and serving requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "error", err)
		}
	}()

	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
