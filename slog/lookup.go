package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reactdict"
)

// Ensure LoggingLookup implements reactdict.Lookup.
var _ reactdict.Lookup = (*LoggingLookup)(nil)

// LoggingLookup wraps a Lookup and logs each resolved term.
type LoggingLookup struct {
	next   reactdict.Lookup
	logger *slog.Logger
}

// NewLoggingLookup creates a new LoggingLookup.
func NewLoggingLookup(next reactdict.Lookup, logger *slog.Logger) *LoggingLookup {
	return &LoggingLookup{next: next, logger: logger}
}

// Lookup delegates to the wrapped lookup and logs the operation.
func (l *LoggingLookup) Lookup(ctx context.Context, term string) (def *reactdict.Definition, err error) {
	defer func(begin time.Time) {
		var source reactdict.DefinitionSource
		if def != nil {
			source = def.Source
		}
		l.logger.Info("lookup",
			"term", term,
			"source", string(source),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Lookup(ctx, term)
}
