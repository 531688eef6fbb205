package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText remove acentos, espaços nas pontas e diferenças de caixa,
// para comparar nomes vindos do backend ("Lácteos" == "lacteos")
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = strings.TrimSpace(s)
	}
	return cases.Fold().String(stripped)
}
