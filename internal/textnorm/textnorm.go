// Package textnorm canonicalizes review text for the sentiment pipeline.
//
// Two variants exist and are intentionally divergent. The classification
// variant folds accents so lexicon lookups hit their accent-free stems.
// The indexing variant keeps accented spelling so the published word
// tables stay human readable. Both delete (never replace) every character
// outside their alphabet, so tokens may merge across a stripped boundary.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Variant selects the retained alphabet.
type Variant int

const (
	// Classification strips accents and keeps only [a-z] plus whitespace.
	Classification Variant = iota
	// Indexing keeps the Portuguese accented letters of the indexing
	// alphabet plus whitespace. Accents are preserved, not folded.
	Indexing
)

// indexingExtra is the accented part of the indexing alphabet. The set is
// authoritative as-is: ê, ô, digits and the remaining circumflexed vowels
// are dropped, matching the published word tables.
var indexingExtra = map[rune]bool{
	'á': true, 'é': true, 'í': true, 'ó': true, 'ú': true,
	'ã': true, 'õ': true, 'ç': true, 'à': true,
}

// Normalize lowercases raw and deletes every rune outside the variant's
// alphabet. It is pure; empty or all-punctuation input yields "".
func Normalize(raw string, variant Variant) string {
	s := strings.ToLower(raw)
	if variant == Classification {
		s = foldAccents(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case variant == Indexing && indexingExtra[r]:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Words normalizes raw with the given variant and splits it on whitespace.
func Words(raw string, variant Variant) []string {
	return strings.Fields(Normalize(raw, variant))
}

// foldAccents decomposes to NFD, drops combining marks, and recomposes.
// "ótimo" becomes "otimo".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
