package matcher

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/sarthakjha889/go-prefix-trie/normalize"
)

// Exact finds whole-word keyword occurrences in text. Each keyword maps to a clean
// name, which is what extraction reports and what replacement writes.
type Exact struct {
	mu         sync.RWMutex
	keywords   *patricia.Trie
	normaliser normalize.Normalizer
	// longest is the byte length of the longest normalized keyword.
	longest int
}

// NewExact creates an empty keyword matcher.
func NewExact(caseSensitive bool) *Exact {
	return &Exact{
		keywords: patricia.NewTrie(),
		// accents are kept so normalized text lines up rune for rune with the input
		normaliser: normalize.Normalizer{CaseSensitive: caseSensitive},
	}
}

// Add registers keywords that map to themselves. Empty strings are ignored.
func (e *Exact) Add(words ...string) {
	for _, w := range words {
		e.AddMapping(w, w)
	}
}

// AddMapping registers keyword from, reported and replaced as to.
func (e *Exact) AddMapping(from, to string) {
	key := e.normaliser.String(from)
	if key == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keywords.Set(patricia.Prefix(key), to)
	if len(key) > e.longest {
		e.longest = len(key)
	}
}

// Contains reports whether word is a registered keyword.
func (e *Exact) Contains(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.keywords.Get(patricia.Prefix(e.normaliser.String(word))) != nil
}

// Filter reports for each word whether it is a registered keyword.
func (e *Exact) Filter(words []string) []bool {
	res := make([]bool, len(words))
	for i, w := range words {
		res[i] = e.Contains(w)
	}
	return res
}

// Extract returns the clean names of the keywords found in text, left to right.
// At each position the longest keyword ending on a word boundary wins, and matches
// never overlap.
func (e *Exact) Extract(text string) []string {
	found := make([]string, 0)
	e.scan(text, func(_, _ int, clean string) {
		found = append(found, clean)
	})
	return found
}

// Match returns the extracted keywords, each with a score of 1.
func (e *Exact) Match(query string) []Match {
	extracted := e.Extract(query)
	matches := make([]Match, len(extracted))
	for i, w := range extracted {
		matches[i] = Match{Word: w, Score: 1}
	}
	return matches
}

// Transform replaces every keyword found in text with its clean name.
func (e *Exact) Transform(text string) string {
	original := []rune(text)
	var b strings.Builder
	last := 0
	e.scan(text, func(start, end int, clean string) {
		b.WriteString(string(original[last:start]))
		b.WriteString(clean)
		last = end
	})
	b.WriteString(string(original[last:]))
	return b.String()
}

// TransformAll applies Transform to each document.
func (e *Exact) TransformAll(documents []string) []string {
	res := make([]string, len(documents))
	for i, doc := range documents {
		res[i] = e.Transform(doc)
	}
	return res
}

// scan calls emit with the rune span and clean name of each keyword occurrence.
func (e *Exact) scan(text string, emit func(start, end int, clean string)) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	lowered := e.normaliser.String(text)
	runes := []rune(lowered)
	offsets := make([]int, 0, len(runes)+1)
	for i := range lowered {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(lowered))

	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) || (i > 0 && isWordRune(runes[i-1])) {
			i++
			continue
		}
		limit := min(offsets[i]+e.longest, len(lowered))
		end, clean := -1, ""
		_ = e.keywords.VisitPrefixes(patricia.Prefix(lowered[offsets[i]:limit]), func(p patricia.Prefix, item patricia.Item) error {
			j := i + utf8.RuneCount(p)
			if j == len(runes) || !isWordRune(runes[j]) {
				end, clean = j, item.(string)
			}
			return nil
		})
		if end > i {
			emit(i, end, clean)
			i = end
			continue
		}
		i++
	}
}
