package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reactdict"
)

// Ensure LoggingReferenceFinder implements reactdict.ReferenceFinder.
var _ reactdict.ReferenceFinder = (*LoggingReferenceFinder)(nil)

// LoggingReferenceFinder wraps a ReferenceFinder and logs each lookup.
type LoggingReferenceFinder struct {
	next   reactdict.ReferenceFinder
	logger *slog.Logger
}

// NewLoggingReferenceFinder creates a new LoggingReferenceFinder.
func NewLoggingReferenceFinder(next reactdict.ReferenceFinder, logger *slog.Logger) *LoggingReferenceFinder {
	return &LoggingReferenceFinder{next: next, logger: logger}
}

// FindReference delegates to the wrapped finder and logs the operation.
// Missing references are not failures and are logged at info level.
func (f *LoggingReferenceFinder) FindReference(ctx context.Context, term string) (ref *reactdict.Reference, err error) {
	defer func(begin time.Time) {
		switch {
		case err == nil:
			f.logger.Info("reference lookup",
				"term", term,
				"url", ref.URL,
				"bytes", len(ref.Content),
				"duration", time.Since(begin),
			)
		case reactdict.ErrorCode(err) == reactdict.ENOTFOUND:
			f.logger.Info("reference lookup", "term", term, "found", false, "duration", time.Since(begin))
		default:
			f.logger.Warn("reference lookup", "term", term, "duration", time.Since(begin), "err", err)
		}
	}(time.Now())
	return f.next.FindReference(ctx, term)
}
