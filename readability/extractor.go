// Package readability extracts reference page content with go-readability.
// It serves as the fallback when trafilatura finds no article body.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reactdict"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements reactdict.Extractor at compile time.
var _ reactdict.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	// PageURL, if set, is used to resolve relative links in the content.
	PageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*reactdict.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, reactdict.Errorf(reactdict.ENOTFOUND, "no main content found")
	}

	return &reactdict.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
