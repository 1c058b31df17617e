package reference_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/mock"
	"github.com/fwojciec/reactdict/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://react.dev/reference/react/useState"

type fixture struct {
	finder     *reference.Finder
	fetched    []string
	indexCalls int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fx := &fixture{}
	fx.finder = &reference.Finder{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fx.fetched = append(fx.fetched, url)
				if url == reference.DefaultIndexURL {
					return "<nav>index</nav>", nil
				}
				return "<article>useState page</article>", nil
			},
		},
		Index: &mock.ReferenceIndex{
			LocateFn: func(html, baseURL, term string) (string, error) {
				fx.indexCalls++
				assert.Equal(t, "<nav>index</nav>", html)
				assert.Equal(t, reference.DefaultIndexURL, baseURL)
				if term != "useState" {
					return "", reactdict.Errorf(reactdict.ENOTFOUND, "no reference page")
				}
				return pageURL, nil
			},
		},
		Extractors: []reactdict.Extractor{
			&mock.Extractor{
				ExtractFn: func(html string) (*reactdict.ExtractResult, error) {
					return &reactdict.ExtractResult{Title: "useState", ContentHTML: html}, nil
				},
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# useState\n\nAdds state.", nil
			},
		},
		RetryDelays: []time.Duration{0, 0},
	}
	return fx
}

func TestFinder_FindReference(t *testing.T) {
	t.Parallel()

	t.Run("returns converted reference page", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)

		ref, err := fx.finder.FindReference(context.Background(), "useState")

		require.NoError(t, err)
		assert.Equal(t, pageURL, ref.URL)
		assert.Equal(t, "useState", ref.Title)
		assert.Equal(t, "# useState\n\nAdds state.", ref.Content)
		assert.Equal(t, []string{reference.DefaultIndexURL, pageURL}, fx.fetched)
	})

	t.Run("reuses the index page", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		ctx := context.Background()

		_, err := fx.finder.FindReference(ctx, "useState")
		require.NoError(t, err)
		_, err = fx.finder.FindReference(ctx, "useState")
		require.NoError(t, err)

		assert.Equal(t, []string{reference.DefaultIndexURL, pageURL, pageURL}, fx.fetched)
	})

	t.Run("refetches an expired index", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		fx.finder.Now = func() time.Time { return now }
		ctx := context.Background()

		_, err := fx.finder.FindReference(ctx, "useState")
		require.NoError(t, err)
		now = now.Add(2 * reference.DefaultIndexTTL)
		_, err = fx.finder.FindReference(ctx, "useState")
		require.NoError(t, err)

		assert.Equal(t, []string{reference.DefaultIndexURL, pageURL, reference.DefaultIndexURL, pageURL}, fx.fetched)
	})

	t.Run("returns ENOTFOUND for unknown terms", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)

		_, err := fx.finder.FindReference(context.Background(), "prop drilling")

		require.Error(t, err)
		assert.Equal(t, reactdict.ENOTFOUND, reactdict.ErrorCode(err))
	})

	t.Run("rejects blank term", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)

		_, err := fx.finder.FindReference(context.Background(), "")

		assert.Equal(t, reactdict.EINVALID, reactdict.ErrorCode(err))
		assert.Empty(t, fx.fetched)
	})

	t.Run("retries failed fetches", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		var attempts int
		fx.finder.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				attempts++
				if attempts == 1 {
					return "", errors.New("connection reset")
				}
				if url == reference.DefaultIndexURL {
					return "<nav>index</nav>", nil
				}
				return "<article/>", nil
			},
		}

		_, err := fx.finder.FindReference(context.Background(), "useState")

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("falls back to the next extractor", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		fx.finder.Extractors = []reactdict.Extractor{
			&mock.Extractor{
				ExtractFn: func(string) (*reactdict.ExtractResult, error) {
					return nil, reactdict.Errorf(reactdict.ENOTFOUND, "no main content found")
				},
			},
			&mock.Extractor{
				ExtractFn: func(html string) (*reactdict.ExtractResult, error) {
					return &reactdict.ExtractResult{Title: "fallback", ContentHTML: html}, nil
				},
			},
		}

		ref, err := fx.finder.FindReference(context.Background(), "useState")

		require.NoError(t, err)
		assert.Equal(t, "fallback", ref.Title)
	})

	t.Run("reports extraction failure", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		fx.finder.Extractors = []reactdict.Extractor{
			&mock.Extractor{
				ExtractFn: func(string) (*reactdict.ExtractResult, error) {
					return &reactdict.ExtractResult{}, nil
				},
			},
		}

		_, err := fx.finder.FindReference(context.Background(), "useState")

		assert.Equal(t, reactdict.ENOTFOUND, reactdict.ErrorCode(err))
	})

	t.Run("truncates content to the token budget", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		long := strings.Repeat("word word word word\n", 100)
		fx.finder.Converter = &mock.Converter{
			ConvertFn: func(string) (string, error) { return long, nil },
		}
		fx.finder.TokenCounter = &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return len(strings.Fields(text)), nil
			},
		}
		fx.finder.MaxTokens = 50

		ref, err := fx.finder.FindReference(context.Background(), "useState")

		require.NoError(t, err)
		assert.LessOrEqual(t, len(strings.Fields(ref.Content)), 50)
		assert.NotEmpty(t, ref.Content)
	})
}
