package reactdict

import "context"

// Reference is official documentation for a term, converted to Markdown.
type Reference struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReferenceFinder finds the official documentation page for a term.
type ReferenceFinder interface {
	// FindReference returns the reference for term.
	// Returns ENOTFOUND if no documentation page exists for the term.
	FindReference(ctx context.Context, term string) (*Reference, error)
}

// ReferenceIndex locates the documentation page of a term in an index page.
type ReferenceIndex interface {
	// Locate returns the absolute URL of the page documenting term.
	// Returns ENOTFOUND if the index has no page for the term.
	Locate(html, baseURL, term string) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
