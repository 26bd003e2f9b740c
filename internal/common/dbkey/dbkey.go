// Package dbkey turns free text into strings safe to use inside store keys.
package dbkey

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invalidChars may not appear in a key segment
const invalidChars = ".#$[]"

var underscoreRuns = regexp.MustCompile(`_+`)

// Clean normalises raw into a lowercase key. Diacritics are dropped, dashes,
// whitespace and invalid characters become underscores, runs of underscores
// collapse into one and trailing underscores are removed. An input that
// cleans down to nothing yields "_".
//
//	Clean("John.Doe #1 č ") == "john_doe_1_c"
func Clean(raw string) string {
	stripDiacritics := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripDiacritics, strings.TrimSpace(raw))
	if err != nil {
		stripped = strings.TrimSpace(raw)
	}

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r == '-', unicode.IsSpace(r), strings.ContainsRune(invalidChars, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.ToLower(underscoreRuns.ReplaceAllString(b.String(), "_"))
	if cleaned == "" || cleaned == "_" {
		return "_"
	}
	return strings.TrimRight(cleaned, "_")
}
