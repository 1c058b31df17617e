package preload_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/mock"
	"github.com/fwojciec/reactdict/preload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// memorySeeds is a SeedStore keeping the last saved snapshot.
type memorySeeds struct {
	mu    sync.Mutex
	defs  []*reactdict.Definition
	saves int
}

func (s *memorySeeds) store() *mock.SeedStore {
	return &mock.SeedStore{
		LoadDefinitionsFn: func(context.Context) ([]*reactdict.Definition, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return append([]*reactdict.Definition(nil), s.defs...), nil
		},
		SaveDefinitionsFn: func(_ context.Context, defs []*reactdict.Definition) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.defs = append([]*reactdict.Definition(nil), defs...)
			s.saves++
			return nil
		},
	}
}

func generated(_ context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
	return &reactdict.Definition{
		Term:    req.Term,
		Purpose: "purpose of " + req.Term,
		Why:     []string{"a", "b", "c"},
		Example: "example",
		Code:    "code",
		Summary: "summary",
	}, nil
}

func newPreloader(definer reactdict.Definer, seeds reactdict.SeedStore) *preload.Preloader {
	return &preload.Preloader{
		Definer:     definer,
		Seeds:       seeds,
		Limiter:     rate.NewLimiter(rate.Inf, 1),
		RetryDelays: []time.Duration{},
		Now:         func() time.Time { return fixedNow },
	}
}

func TestPreloader_Run(t *testing.T) {
	t.Parallel()

	t.Run("generates missing terms as moderated seeds", func(t *testing.T) {
		t.Parallel()

		seeds := &memorySeeds{}
		p := newPreloader(&mock.Definer{DefineFn: generated}, seeds.store())

		result, err := p.Run(context.Background(), []string{"useState", "JSX"}, nil)

		require.NoError(t, err)
		assert.Equal(t, &preload.Result{Generated: 2, Total: 2}, result)
		require.Len(t, seeds.defs, 2)
		for _, def := range seeds.defs {
			assert.True(t, def.Moderated)
			assert.False(t, def.Suggested)
			assert.Equal(t, reactdict.SourceSeed, def.Source)
			assert.Equal(t, reactdict.TermID(def.Term), def.ID)
			assert.Equal(t, fixedNow, def.CreatedAt)
		}
		assert.Equal(t, 2, seeds.saves)
	})

	t.Run("skips existing terms case-insensitively", func(t *testing.T) {
		t.Parallel()

		seeds := &memorySeeds{defs: []*reactdict.Definition{{Term: "useState", Purpose: "kept"}}}
		var asked []string
		var mu sync.Mutex
		definer := &mock.Definer{
			DefineFn: func(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
				mu.Lock()
				asked = append(asked, req.Term)
				mu.Unlock()
				return generated(ctx, req)
			},
		}
		p := newPreloader(definer, seeds.store())

		result, err := p.Run(context.Background(), []string{"USESTATE", "jsx", "JSX", " ", "props"}, nil)

		require.NoError(t, err)
		assert.Equal(t, &preload.Result{Existing: 1, Generated: 2, Total: 3}, result)
		sort.Strings(asked)
		assert.Equal(t, []string{"jsx", "props"}, asked)
		require.Len(t, seeds.defs, 3)
		assert.Equal(t, "kept", seeds.defs[0].Purpose)
	})

	t.Run("counts failures without aborting", func(t *testing.T) {
		t.Parallel()

		seeds := &memorySeeds{}
		definer := &mock.Definer{
			DefineFn: func(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
				if req.Term == "broken" {
					return nil, reactdict.Errorf(reactdict.EINTERNAL, "failed to parse model response")
				}
				return generated(ctx, req)
			},
		}
		p := newPreloader(definer, seeds.store())

		var events []preload.ProgressEvent
		result, err := p.Run(context.Background(), []string{"broken", "memo"}, func(e preload.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Equal(t, &preload.Result{Generated: 1, Failed: 1, Total: 2}, result)
		require.Len(t, seeds.defs, 1)
		assert.Equal(t, "memo", seeds.defs[0].Term)

		require.Len(t, events, 4)
		assert.Equal(t, preload.ProgressStarted, events[0].Type)
		assert.Equal(t, preload.ProgressFailed, events[1].Type)
		assert.Equal(t, "broken", events[1].Term)
		assert.Error(t, events[1].Error)
		assert.Equal(t, preload.ProgressCompleted, events[2].Type)
		assert.Equal(t, preload.ProgressFinished, events[3].Type)
		assert.Equal(t, 2, events[3].Completed)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		seeds := &memorySeeds{}
		attempts := 0
		definer := &mock.Definer{
			DefineFn: func(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
				attempts++
				if attempts == 1 {
					return nil, errors.New("503 unavailable")
				}
				return generated(ctx, req)
			},
		}
		p := newPreloader(definer, seeds.store())
		p.RetryDelays = []time.Duration{time.Millisecond}

		result, err := p.Run(context.Background(), []string{"lazy"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Generated)
		assert.Equal(t, 2, attempts)
	})

	t.Run("runs concurrently", func(t *testing.T) {
		t.Parallel()

		seeds := &memorySeeds{}
		p := newPreloader(&mock.Definer{DefineFn: generated}, seeds.store())
		p.Concurrency = 4

		result, err := p.Run(context.Background(), preload.DefaultTerms(), nil)

		require.NoError(t, err)
		assert.Equal(t, len(preload.DefaultTerms()), result.Generated)
		assert.Len(t, seeds.defs, result.Generated)
		assert.Equal(t, result.Generated, seeds.saves)
	})

	t.Run("returns load error", func(t *testing.T) {
		t.Parallel()

		seeds := &mock.SeedStore{
			LoadDefinitionsFn: func(context.Context) ([]*reactdict.Definition, error) {
				return nil, reactdict.Errorf(reactdict.EINVALID, "malformed seed file")
			},
		}
		p := newPreloader(&mock.Definer{DefineFn: generated}, seeds)

		_, err := p.Run(context.Background(), []string{"JSX"}, nil)

		assert.Equal(t, reactdict.EINVALID, reactdict.ErrorCode(err))
	})

	t.Run("stops when saving fails", func(t *testing.T) {
		t.Parallel()

		seeds := &mock.SeedStore{
			LoadDefinitionsFn: func(context.Context) ([]*reactdict.Definition, error) { return nil, nil },
			SaveDefinitionsFn: func(context.Context, []*reactdict.Definition) error {
				return errors.New("read-only file system")
			},
		}
		p := newPreloader(&mock.Definer{DefineFn: generated}, seeds)

		_, err := p.Run(context.Background(), []string{"JSX", "props"}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only file system")
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		seeds := &memorySeeds{}
		p := newPreloader(&mock.Definer{DefineFn: generated}, seeds.store())
		p.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

		_, err := p.Run(ctx, []string{"JSX"}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, seeds.defs)
	})
}

func TestDefaultTerms(t *testing.T) {
	t.Parallel()

	terms := preload.DefaultTerms()

	assert.Len(t, terms, 53)
	assert.Contains(t, terms, "useState")
	assert.Contains(t, terms, "uncontrolled component")
}
