package main

import (
	"fmt"

	"github.com/fwojciec/reactdict"
	rdhttp "github.com/fwojciec/reactdict/http"
)

// Run executes the serve command. It blocks until the context is done.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if deps.Seeds != nil {
		if err := importSeeds(deps, deps.Seeds); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", reactdict.ErrorMessage(err))
			return err
		}
	}

	s := rdhttp.NewServer()
	s.Addr = c.Addr
	s.StaticDir = c.Static
	s.AdminToken = c.AdminToken
	s.Limiter = nil
	if c.RPS > 0 {
		s.Limiter = rdhttp.NewClientLimiter(c.RPS, c.Burst)
	}
	s.Logger = deps.Logger
	s.Lookup = deps.Lookup
	s.Suggestions = deps.Suggestions
	s.Moderation = deps.Moderation
	s.Definitions = deps.Definitions
	s.Bookmarks = deps.Bookmarks
	s.Searches = deps.Searches
	s.Matcher = deps.Matcher

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	deps.Logger.Info("server listening", "url", s.URL(), "admin_auth", c.AdminToken != "")

	<-deps.Ctx.Done()

	deps.Logger.Info("shutting down")
	return s.Close()
}

// importSeeds loads seed definitions from store into the dictionary.
func importSeeds(deps *Dependencies, store reactdict.SeedStore) error {
	defs, err := store.LoadDefinitions(deps.Ctx)
	if err != nil {
		return err
	}

	n, err := deps.Importer.Import(deps.Ctx, defs)
	if err != nil {
		return err
	}
	deps.Logger.Info("seed definitions imported", "imported", n, "total", len(defs))
	return nil
}
