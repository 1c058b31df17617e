package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/fwojciec/reactdict"
)

var fencePattern = regexp.MustCompile("(?s)```(?:json)?(.*)```")

// content mirrors the JSON object the model is asked to return.
type content struct {
	Purpose string   `json:"purpose"`
	Why     []string `json:"why"`
	Example string   `json:"example"`
	Code    string   `json:"code"`
	Summary string   `json:"summary"`
}

// ParseDefinition extracts the definition object from a model response.
// The object may be wrapped in a fenced code block or surrounded by prose.
func ParseDefinition(term, text string) (*reactdict.Definition, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, reactdict.Errorf(reactdict.EINTERNAL, "failed to parse model response")
	}

	var c content
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, reactdict.Errorf(reactdict.EINTERNAL, "failed to parse model response")
	}

	term = strings.TrimSpace(term)
	def := &reactdict.Definition{
		ID:      reactdict.TermID(term),
		Term:    term,
		Purpose: strings.TrimSpace(c.Purpose),
		Example: strings.TrimSpace(c.Example),
		Code:    strings.TrimSpace(c.Code),
		Summary: strings.TrimSpace(c.Summary),
	}
	for _, w := range c.Why {
		if w = strings.TrimSpace(w); w != "" {
			def.Why = append(def.Why, w)
		}
	}

	if !def.IsComplete() {
		return nil, reactdict.Errorf(reactdict.EINTERNAL, "model response is missing definition fields")
	}
	return def, nil
}

// extractJSON returns the JSON object text inside a model response.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	if strings.HasPrefix(text, "{") && json.Valid([]byte(text)) {
		return text
	}
	return firstObject(text)
}

// firstObject returns the first balanced {...} object in s, honouring
// braces inside JSON strings.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
