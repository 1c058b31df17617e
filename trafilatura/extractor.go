// Package trafilatura extracts the article body of reference pages with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/reactdict"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements reactdict.Extractor at compile time.
var _ reactdict.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor tuned for documentation pages:
// code samples and tables are kept, comments and images are dropped.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			ExcludeTables:   false,
			IncludeImages:   false,
			IncludeLinks:    true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when the page has no recognizable body.
func (e *Extractor) Extract(rawHTML string) (*reactdict.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result == nil || result.ContentNode == nil {
		return nil, reactdict.Errorf(reactdict.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &reactdict.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: buf.String(),
	}, nil
}
