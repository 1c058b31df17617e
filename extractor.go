package reactdict

// ExtractResult holds the main content extracted from a documentation page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the article body with navigation, sidebars and footers removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
