package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// FoldUnit folds a unit label the way utf8mb4_unicode_ci compares text:
// accents, full-width forms and case are dropped and inner space collapsed.
// Input that is not valid UTF-8 is read as Windows-1252.
func FoldUnit(label string) string {
	if !utf8.ValidString(label) {
		if decoded, err := charmap.Windows1252.NewDecoder().String(label); err == nil {
			label = decoded
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), width.Fold, norm.NFC)
	folded, _, err := transform.String(t, label)
	if err != nil {
		folded = label
	}
	return cases.Fold().String(strings.Join(strings.Fields(folded), " "))
}
