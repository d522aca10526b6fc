/*
Package normalize turns raw strings into the form that gets indexed and matched.
Two strings with the same normalized form are indistinguishable to the trie and
the matchers built on top of this package.
*/
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer holds the two switches applied before indexing or lookup.
// The zero value lower-cases and keeps accents.
type Normalizer struct {
	CaseSensitive bool
	FoldASCII     bool
}

// Default returns a case-insensitive, accent-folding Normalizer.
func Default() Normalizer {
	return Normalizer{FoldASCII: true}
}

// String returns the normalized form of s.
// For example, with folding on and case sensitivity off, "Jürgen" becomes "jurgen".
func (n Normalizer) String(s string) string {
	if n.FoldASCII {
		s = Fold(s)
	}
	if !n.CaseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// Runes returns the normalized form of s as a rune slice.
func (n Normalizer) Runes(s string) []rune {
	return []rune(n.String(s))
}

// Fold strips combining marks from s, so accented letters become their base letter.
// Letters without a canonical decomposition (ß, ø, æ) are left alone.
// If the transformation fails s is returned unchanged.
func Fold(s string) string {
	// a transform chain keeps internal buffers, so each call gets its own
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(transformer, s)
	if err != nil {
		return s
	}
	return folded
}
