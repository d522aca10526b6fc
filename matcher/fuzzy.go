package matcher

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/sarthakjha889/go-prefix-trie/normalize"
)

// DefaultMinSimilarity is the similarity below which Fuzzy drops candidates.
const DefaultMinSimilarity = 0.6

// Fuzzy returns vocabulary entries that contain the query as a subsequence,
// scored by how much of the entry the query covers.
type Fuzzy struct {
	mu            sync.RWMutex
	normaliser    normalize.Normalizer
	minSimilarity float64
	// words holds the entries as added, keys their normalized forms.
	words []string
	keys  []string
	index map[string]int
}

// NewFuzzy creates an empty similarity matcher. A minSimilarity outside (0, 1]
// falls back to DefaultMinSimilarity.
func NewFuzzy(minSimilarity float64) *Fuzzy {
	if !(minSimilarity > 0 && minSimilarity <= 1) {
		minSimilarity = DefaultMinSimilarity
	}
	return &Fuzzy{
		normaliser:    normalize.Default(),
		minSimilarity: minSimilarity,
		index:         make(map[string]int),
	}
}

// Add appends words to the vocabulary. A word whose normalized form is already
// present replaces the earlier entry.
func (f *Fuzzy) Add(words ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range words {
		key := f.normaliser.String(w)
		if key == "" {
			continue
		}
		if i, ok := f.index[key]; ok {
			f.words[i] = w
			continue
		}
		f.index[key] = len(f.keys)
		f.keys = append(f.keys, key)
		f.words = append(f.words, w)
	}
}

// Len returns the vocabulary size.
func (f *Fuzzy) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.keys)
}

// Get returns the entries similar to word, most similar first.
func (f *Fuzzy) Get(word string) []Match {
	query := f.normaliser.String(word)
	matches := make([]Match, 0)
	if query == "" {
		return matches
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	results := fuzzy.Find(query, f.keys)
	scores := make([]int, 0, len(results))
	queryLen := utf8.RuneCountInString(query)
	for _, r := range results {
		candidateLen := utf8.RuneCountInString(r.Str)
		similarity := 2 * float64(queryLen) / float64(queryLen+candidateLen)
		if similarity < f.minSimilarity {
			continue
		}
		matches = append(matches, Match{Word: f.words[r.Index], Score: similarity})
		scores = append(scores, r.Score)
	}

	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return scores[a] > scores[b]
	})
	sorted := make([]Match, len(matches))
	for i, k := range order {
		sorted[i] = matches[k]
	}
	return sorted
}

// Match is Get.
func (f *Fuzzy) Match(query string) []Match {
	return f.Get(query)
}

// Contains reports whether any entry is similar enough to word.
func (f *Fuzzy) Contains(word string) bool {
	return len(f.Get(word)) > 0
}
