package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s, strips diacritics and collapses whitespace, so
// "  EN  LÍNEA " and "en linea" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	return strings.ToLower(strings.Join(strings.Fields(res), " "))
}

// squash collapses runs of whitespace in a label to single spaces. Used for
// header matching, where the export is not consistent ("Total  inscripciones").
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
