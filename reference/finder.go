// Package reference grounds definitions in the official React documentation.
// It finds a term's API page on the reference index, extracts the article
// body and converts it to Markdown small enough to include in a prompt.
package reference

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/reactdict"
)

// DefaultIndexURL is the React API reference landing page.
const DefaultIndexURL = "https://react.dev/reference/react"

// DefaultMaxTokens bounds the size of reference content passed to the model.
const DefaultMaxTokens = 4000

// DefaultIndexTTL is how long a fetched index page is reused.
const DefaultIndexTTL = time.Hour

var _ reactdict.ReferenceFinder = (*Finder)(nil)

// Finder implements reactdict.ReferenceFinder.
type Finder struct {
	Fetcher      reactdict.Fetcher
	Index        reactdict.ReferenceIndex
	Extractors   []reactdict.Extractor
	Converter    reactdict.Converter
	TokenCounter reactdict.TokenCounter

	IndexURL    string
	IndexTTL    time.Duration
	MaxTokens   int
	RetryDelays []time.Duration
	Logger      reactdict.LogFunc
	Now         func() time.Time

	mu        sync.Mutex
	indexHTML string
	fetchedAt time.Time
}

// FindReference returns the converted reference page for term.
// Returns ENOTFOUND when the index has no page for the term.
func (f *Finder) FindReference(ctx context.Context, term string) (*reactdict.Reference, error) {
	if strings.TrimSpace(term) == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "term required")
	}

	indexHTML, err := f.index(ctx)
	if err != nil {
		return nil, err
	}

	pageURL, err := f.Index.Locate(indexHTML, f.indexURL(), term)
	if err != nil {
		return nil, err
	}

	html, err := f.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := f.extract(html)
	if err != nil {
		return nil, err
	}

	markdown, err := f.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	markdown, err = f.truncate(ctx, markdown)
	if err != nil {
		return nil, err
	}

	return &reactdict.Reference{
		URL:     pageURL,
		Title:   extracted.Title,
		Content: markdown,
	}, nil
}

// index returns the reference index page, fetching it when the cached copy
// is missing or older than IndexTTL.
func (f *Finder) index(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ttl := f.IndexTTL
	if ttl <= 0 {
		ttl = DefaultIndexTTL
	}
	if f.indexHTML != "" && f.now().Sub(f.fetchedAt) < ttl {
		return f.indexHTML, nil
	}

	html, err := f.fetch(ctx, f.indexURL())
	if err != nil {
		return "", err
	}
	f.indexHTML = html
	f.fetchedAt = f.now()
	return html, nil
}

func (f *Finder) fetch(ctx context.Context, url string) (string, error) {
	delays := f.RetryDelays
	if delays == nil {
		delays = reactdict.DefaultRetryDelays()
	}
	return reactdict.Retry(ctx, delays, func(ctx context.Context) (string, error) {
		return f.Fetcher.Fetch(ctx, url)
	}, f.Logger)
}

// extract tries each extractor in order and returns the first non-empty body.
func (f *Finder) extract(html string) (*reactdict.ExtractResult, error) {
	var lastErr error
	for _, ext := range f.Extractors {
		result, err := ext.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			return result, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, reactdict.Errorf(reactdict.ENOTFOUND, "no content extracted")
}

// truncate shortens markdown at line boundaries until it fits MaxTokens.
func (f *Finder) truncate(ctx context.Context, markdown string) (string, error) {
	maxTokens := f.MaxTokens
	if f.TokenCounter == nil || maxTokens <= 0 {
		return markdown, nil
	}

	for range 8 {
		count, err := f.TokenCounter.CountTokens(ctx, markdown)
		if err != nil {
			return "", err
		}
		if count <= maxTokens {
			return markdown, nil
		}

		cut := len(markdown) * maxTokens / count * 9 / 10
		if cut <= 0 {
			return "", nil
		}
		if i := strings.LastIndexByte(markdown[:cut], '\n'); i > 0 {
			cut = i
		}
		markdown = strings.TrimSpace(markdown[:cut])
	}
	return markdown, nil
}

func (f *Finder) indexURL() string {
	if f.IndexURL == "" {
		return DefaultIndexURL
	}
	return f.IndexURL
}

func (f *Finder) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
