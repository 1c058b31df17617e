// Package fs provides file-based storage for definitions.
package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/reactdict"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of an exported definition.
type frontMatter struct {
	Term      string `yaml:"term"`
	Moderated bool   `yaml:"moderated"`
	Source    string `yaml:"source,omitempty"`
	Created   string `yaml:"created"`
}

// FormatDefinition formats a definition as markdown with YAML front matter.
func FormatDefinition(def *reactdict.Definition) (string, error) {
	header, err := yaml.Marshal(frontMatter{
		Term:      def.Term,
		Moderated: def.Moderated,
		Source:    string(def.Source),
		Created:   def.CreatedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString("# ")
	b.WriteString(def.Term)
	b.WriteString("\n\n")
	b.WriteString(def.Purpose)
	b.WriteString("\n\n## Why use it\n\n")
	for _, w := range def.Why {
		b.WriteString("- ")
		b.WriteString(w)
		b.WriteString("\n")
	}
	b.WriteString("\n## Example\n\n")
	b.WriteString(def.Example)
	b.WriteString("\n\n```jsx\n")
	b.WriteString(strings.TrimRight(def.Code, "\n"))
	b.WriteString("\n```\n\n## Summary\n\n")
	b.WriteString(def.Summary)
	b.WriteString("\n")
	return b.String(), nil
}

// ParseFrontMatter returns the term recorded in an exported file's header.
func ParseFrontMatter(content string) (term string, moderated bool, err error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return "", false, reactdict.Errorf(reactdict.EINVALID, "missing front matter")
	}
	header, _, ok := strings.Cut(rest, "---\n")
	if !ok {
		return "", false, reactdict.Errorf(reactdict.EINVALID, "unterminated front matter")
	}

	var fm frontMatter
	dec := yaml.NewDecoder(bytes.NewReader([]byte(header)))
	if err := dec.Decode(&fm); err != nil {
		return "", false, reactdict.Errorf(reactdict.EINVALID, "invalid front matter: %v", err)
	}
	return fm.Term, fm.Moderated, nil
}

// Writer exports definitions as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDefinition writes def to <id>.md and returns the file path.
// Incomplete definitions are rejected with EINVALID.
func (w *Writer) WriteDefinition(ctx context.Context, def *reactdict.Definition) (string, error) {
	if err := def.Validate(); err != nil {
		return "", err
	}
	if !def.IsComplete() {
		return "", reactdict.Errorf(reactdict.EINVALID, "definition for %q has no content", def.Term)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content, err := FormatDefinition(def)
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, reactdict.TermID(def.Term)+".md")
	return path, os.WriteFile(path, []byte(content), 0644)
}
