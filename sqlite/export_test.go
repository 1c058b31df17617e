package sqlite

import "time"

// SetNow overrides the clock used for timestamps.
func (s *DefinitionService) SetNow(fn func() time.Time) { s.now = fn }

// SetNow overrides the clock used for timestamps.
func (s *BookmarkService) SetNow(fn func() time.Time) { s.now = fn }

// SetNow overrides the clock used for timestamps.
func (s *SearchService) SetNow(fn func() time.Time) { s.now = fn }
