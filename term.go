package reactdict

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm returns the case-insensitive lookup form of a term:
// NFKC-normalized, trimmed and lower-cased.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(term)))
}

// TermID returns the stable identifier for a term. It is the normalized term
// with every run of whitespace replaced by a single dash, so "useEffect hook"
// becomes "useeffect-hook". Blank terms have an empty ID.
func TermID(term string) string {
	return strings.Join(strings.Fields(NormalizeTerm(term)), "-")
}
