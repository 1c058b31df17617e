package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reactdict"
)

// Ensure LoggingDefiner implements reactdict.Definer.
var _ reactdict.Definer = (*LoggingDefiner)(nil)

// LoggingDefiner wraps a Definer and logs every generation.
type LoggingDefiner struct {
	next   reactdict.Definer
	logger *slog.Logger
}

// NewLoggingDefiner creates a new LoggingDefiner.
func NewLoggingDefiner(next reactdict.Definer, logger *slog.Logger) *LoggingDefiner {
	return &LoggingDefiner{next: next, logger: logger}
}

// Define delegates to the wrapped definer and logs the operation.
func (d *LoggingDefiner) Define(ctx context.Context, req reactdict.DefineRequest) (def *reactdict.Definition, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"term", req.Term,
			"reference", req.Reference != nil,
			"duration", time.Since(begin),
		}
		if err != nil {
			d.logger.Error("define", append(attrs, "code", reactdict.ErrorCode(err), "err", err)...)
			return
		}
		d.logger.Info("define", attrs...)
	}(time.Now())
	return d.next.Define(ctx, req)
}
