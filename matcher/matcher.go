/*
Package matcher is a string-matching façade over a vocabulary, independent of the trie.

Exact extracts and replaces whole keywords in running text, the way a keyword
processor does. Fuzzy returns the vocabulary entries similar to a query along with
a similarity score. Both satisfy Matcher.
*/
package matcher

import "unicode"

// Match is a vocabulary entry returned for a query.
type Match struct {
	Word  string
	Score float64
}

// Matcher returns the vocabulary entries matching query, best first when scored.
type Matcher interface {
	Match(query string) []Match
}

var (
	_ Matcher = (*Exact)(nil)
	_ Matcher = (*Fuzzy)(nil)
)

// isWordRune reports whether r can be part of a keyword token.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
