// Package goquery locates React reference pages in HTML using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/reactdict"
)

// DefaultPathPrefix is the URL path under which React API pages live.
const DefaultPathPrefix = "/reference/"

// Ensure Index implements reactdict.ReferenceIndex at compile time.
var _ reactdict.ReferenceIndex = (*Index)(nil)

// Index finds the page documenting a term among the links of an index page.
type Index struct {
	// PathPrefix restricts candidate links to this URL path prefix.
	PathPrefix string
}

// NewIndex creates an Index restricted to DefaultPathPrefix.
func NewIndex() *Index {
	return &Index{PathPrefix: DefaultPathPrefix}
}

// Locate returns the absolute URL of the page documenting term. A link
// matches when its text or the last segment of its path names the term,
// ignoring case, a "React." prefix, JSX angle brackets, quotes and a
// trailing "()". Navigation links are preferred over links in the body.
func (i *Index) Locate(html, baseURL, term string) (string, error) {
	want := referenceKey(term)
	if want == "" {
		return "", reactdict.Errorf(reactdict.EINVALID, "term required")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", reactdict.Errorf(reactdict.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", reactdict.Errorf(reactdict.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range []string{"nav a[href], aside a[href]", "a[href]"} {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			if href == "" || isNonHTTPLink(href) {
				return true
			}

			resolved := resolveURL(base, href)
			if resolved == "" || !isSameHost(base, resolved) {
				return true
			}

			u, err := url.Parse(resolved)
			if err != nil || !strings.HasPrefix(u.Path, i.PathPrefix) {
				return true
			}

			segment := u.Path[strings.LastIndex(strings.TrimSuffix(u.Path, "/"), "/")+1:]
			if referenceKey(sel.Text()) == want || referenceKey(segment) == want {
				found = resolved
				return false
			}
			return true
		})
		if found != "" {
			return found, nil
		}
	}

	return "", reactdict.Errorf(reactdict.ENOTFOUND, "no reference page for %q", term)
}

// referenceKey reduces a term, link text or path segment to a comparable form.
func referenceKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `<>/'"`+"`")
	s = strings.TrimSuffix(s, "()")
	s = strings.TrimSuffix(s, "/")
	id := reactdict.TermID(s)
	id = strings.TrimPrefix(id, "react.")
	return id
}

// resolveURL resolves href against base, dropping the fragment.
// Returns empty string if href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost reports whether resolved is on exactly the host of base.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
