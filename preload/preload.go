// Package preload generates the static seed set of definitions.
// It coordinates generation, rate limiting, and persistence of seed
// records so that common terms are answered without a model call.
package preload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/reactdict"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultRPS is the default number of generation requests per second.
const DefaultRPS = 1

// Preloader generates seed definitions for a list of terms.
type Preloader struct {
	Definer     reactdict.Definer
	Seeds       reactdict.SeedStore
	Limiter     *rate.Limiter
	Concurrency int
	RetryDelays []time.Duration
	Now         func() time.Time
	Logger      *slog.Logger
}

// Result holds the outcome of a preload run.
type Result struct {
	Existing  int
	Generated int
	Failed    int
	Total     int
}

// ProgressEvent reports progress during a preload run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Term      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting preload progress.
type ProgressFunc func(event ProgressEvent)

// Run generates definitions for every term not already in the seed store.
// Each success is saved immediately so an interrupted run keeps its work.
// Individual generation failures are counted, not returned; only loading or
// saving the seed store and context cancellation abort the run.
func (p *Preloader) Run(ctx context.Context, terms []string, progress ProgressFunc) (*Result, error) {
	defs, err := p.Seeds.LoadDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seeds: %w", err)
	}

	known := make(map[string]bool, len(defs))
	for _, def := range defs {
		known[strings.ToLower(strings.TrimSpace(def.Term))] = true
	}

	result := &Result{}
	seen := make(map[string]bool, len(terms))
	var pending []string
	for _, term := range terms {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		result.Total++
		if known[key] {
			result.Existing++
			continue
		}
		pending = append(pending, term)
	}

	var mu sync.Mutex
	completed := 0
	report := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	report(ProgressEvent{Type: ProgressStarted, Total: len(pending)})

	limiter := p.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(DefaultRPS), 1)
	}
	delays := p.RetryDelays
	if delays == nil {
		delays = reactdict.DefaultRetryDelays()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	for _, term := range pending {
		g.Go(func() error {
			def, err := p.generate(gctx, limiter, delays, term)

			mu.Lock()
			defer mu.Unlock()
			completed++

			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				result.Failed++
				p.logger().Warn("generation failed", "term", term, "error", err)
				report(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: len(pending), Term: term, Error: err})
				return nil
			}

			defs = append(defs, def)
			if err := p.Seeds.SaveDefinitions(gctx, defs); err != nil {
				return fmt.Errorf("save seeds: %w", err)
			}
			result.Generated++
			report(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: len(pending), Term: term})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	report(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(pending)})
	return result, nil
}

// generate produces one seed definition, waiting on the limiter before
// every attempt.
func (p *Preloader) generate(ctx context.Context, limiter *rate.Limiter, delays []time.Duration, term string) (*reactdict.Definition, error) {
	logf := func(format string, args ...any) {
		p.logger().Info(fmt.Sprintf(format, args...), "term", term)
	}

	def, err := reactdict.Retry(ctx, delays, func(ctx context.Context) (*reactdict.Definition, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return p.Definer.Define(ctx, reactdict.DefineRequest{Term: term})
	}, logf)
	if err != nil {
		return nil, err
	}

	def.Term = term
	def.ID = reactdict.TermID(term)
	def.Source = reactdict.SourceSeed
	def.Moderated = true
	def.Suggested = false
	def.CreatedAt = p.now().UTC()
	return def, nil
}

func (p *Preloader) concurrency() int {
	if p.Concurrency <= 0 {
		return 1
	}
	return p.Concurrency
}

func (p *Preloader) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Preloader) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
