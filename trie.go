package trie

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/sarthakjha889/go-prefix-trie/normalize"
)

// Trie is a character-level prefix tree answering exact membership, prefix completion
// and approximate lookups over a vocabulary of normalized strings.
//
// Any number of goroutines may read a Trie concurrently. Inserts take an exclusive lock,
// so readers never observe a partly built path.
type Trie struct {
	root       *node
	mu         sync.RWMutex
	normaliser normalize.Normalizer
	size       int
	logger     *log.Logger
}

// GTrie is a generic wrapper around Trie storing typed metadata.
type GTrie[T any] struct{ *Trie }

// NewG creates a new generic trie.
func NewG[T any]() *GTrie[T] { return &GTrie[T]{New()} }

// Insert adds a word with typed metadata.
func (g *GTrie[T]) Insert(key string, meta T) { g.InsertWithMeta(key, meta) }

// Find retrieves metadata for the given key.
func (g *GTrie[T]) Find(key string) (T, bool) {
	v, ok := g.FindMeta(key)
	if !ok {
		var zero T
		return zero, false
	}
	meta, ok := v.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return meta, true
}

// Complete returns the words under prefix with their typed metadata.
func (g *GTrie[T]) Complete(prefix string) []struct {
	Word string
	Meta T
} {
	raw := g.CompleteMeta(prefix)
	res := make([]struct {
		Word string
		Meta T
	}, len(raw))
	for i, e := range raw {
		res[i].Word = e.Word
		if v, ok := e.Meta.(T); ok {
			res[i].Meta = v
		}
	}
	return res
}

// node is a node in a Trie. Children are keyed by a single normalized rune;
// terminal marks the end of an inserted word.
type node struct {
	children map[rune]*node
	terminal bool
	// original is the raw form of the most recent insert ending here.
	original string
	meta     interface{}
}

// Entry is a completed word with its metadata.
type Entry struct {
	Word string
	Meta interface{}
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates a new empty trie. By default matching is case insensitive and accented
// characters are folded to their unaccented form.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.logger = log.Default()
	t.WithNormalisation()
	t.CaseInsensitive()
	return t
}

// NewWithOptions creates an empty trie with explicit case sensitivity and ASCII folding.
func NewWithOptions(caseSensitive, foldASCII bool) *Trie {
	t := New()
	t.normaliser = normalize.Normalizer{CaseSensitive: caseSensitive, FoldASCII: foldASCII}
	return t
}

// WithNormalisation sets the Trie to fold accented characters.
// For example, Jurg will find Jürgen, Jürg will find Jurgen.
// Settings should be chosen before the first insert.
func (t *Trie) WithNormalisation() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normaliser.FoldASCII = true
	return t
}

// WithoutNormalisation sets the Trie to index characters as given.
func (t *Trie) WithoutNormalisation() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normaliser.FoldASCII = false
	return t
}

// CaseSensitive sets the Trie to distinguish upper and lower case.
func (t *Trie) CaseSensitive() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normaliser.CaseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to lower-case everything it indexes or looks up.
func (t *Trie) CaseInsensitive() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normaliser.CaseSensitive = false
	return t
}

// WithLogger replaces the logger used for approximation diagnostics.
func (t *Trie) WithLogger(l *log.Logger) *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l != nil {
		t.logger = l
	}
	return t
}

// Normalize returns the form under which word is indexed.
func (t *Trie) Normalize(word string) string {
	return t.normaliser.String(word)
}

// Insert inserts strings into the Trie. Inserting a word twice is the same as inserting
// it once, and the empty string marks the root itself.
func (t *Trie) Insert(entries ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range entries {
		t.insertInternal(entry, nil)
	}
}

// InsertWithMeta inserts a single string with associated metadata.
func (t *Trie) InsertWithMeta(word string, meta interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.insertInternal(word, meta)
}

// BulkInsertWithMeta inserts multiple strings each with their own metadata.
func (t *Trie) BulkInsertWithMeta(entries map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range entries {
		t.insertInternal(k, v)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(entry string, meta interface{}) {
	current := t.root
	for _, character := range t.normaliser.String(entry) {
		child, ok := current.children[character]
		if !ok {
			child = newNode()
			current.children[character] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
	current.original = entry
	if meta != nil {
		current.meta = meta
	}
}

// walk follows the normalized word from the root. It returns the last node reached
// and how many runes were consumed.
func (t *Trie) walk(word []rune) (*node, int) {
	current := t.root
	for i, r := range word {
		next, ok := current.children[r]
		if !ok {
			return current, i
		}
		current = next
	}
	return current, len(word)
}

// find returns the terminal node for word, or nil.
func (t *Trie) find(word string) *node {
	runes := t.normaliser.Runes(word)
	n, consumed := t.walk(runes)
	if consumed != len(runes) || !n.terminal {
		return nil
	}
	return n
}

// Contains reports whether word, once normalized, was inserted.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.find(word) != nil
}

// FindMeta returns the metadata stored for the exact word, if present.
func (t *Trie) FindMeta(word string) (interface{}, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(word)
	if n == nil {
		return nil, false
	}
	return n.meta, true
}

// Original returns the raw string most recently inserted under word's normalized form.
func (t *Trie) Original(word string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(word)
	if n == nil {
		return "", false
	}
	return n.original, true
}

// Len returns the number of distinct normalized words in the Trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Complete returns every normalized word that has prefix as a normalized prefix,
// in ascending rune order. A prefix that leaves the tree yields an empty slice.
func (t *Trie) Complete(prefix string) []string {
	entries := t.CompleteMeta(prefix)
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

// CompleteMeta is like Complete but also returns each word's metadata.
func (t *Trie) CompleteMeta(prefix string) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	runes := t.normaliser.Runes(prefix)
	start, consumed := t.walk(runes)
	if consumed != len(runes) {
		return []Entry{}
	}
	collection := make([]Entry, 0)
	start.collectAllDescendentWords(&collection, runes)
	return collection
}

// collectAllDescendentWords appends the words of every terminal node in the subtree,
// including n itself. path holds the runes spelling n.
func (n *node) collectAllDescendentWords(collection *[]Entry, path []rune) {
	if n.terminal {
		*collection = append(*collection, Entry{Word: string(path), Meta: n.meta})
	}
	for _, character := range n.sortedKeys() {
		n.children[character].collectAllDescendentWords(collection, append(path, character))
	}
}

// firstTerminal returns the path to the first terminal node found depth first,
// visiting n before its children and children in ascending rune order.
func (n *node) firstTerminal(path []rune) ([]rune, *node, bool) {
	if n.terminal {
		return path, n, true
	}
	for _, character := range n.sortedKeys() {
		if found, hit, ok := n.children[character].firstTerminal(append(path, character)); ok {
			return found, hit, true
		}
	}
	return nil, nil, false
}

func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for character := range n.children {
		keys = append(keys, character)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
