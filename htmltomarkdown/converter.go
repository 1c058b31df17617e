// Package htmltomarkdown converts extracted reference HTML to Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/reactdict"
)

// Ensure Converter implements reactdict.Converter at compile time.
var _ reactdict.Converter = (*Converter)(nil)

var blankLines = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter

	// Domain, if set, makes relative links absolute.
	Domain string
}

// NewConverter creates a new Converter resolving links against domain.
func NewConverter(domain string) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv, Domain: domain}
}

// Convert transforms HTML content into Markdown with runs of blank lines
// collapsed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", reactdict.Errorf(reactdict.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if c.Domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.Domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(blankLines.ReplaceAllString(md, "\n\n")), nil
}
