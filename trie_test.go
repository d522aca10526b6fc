package trie

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	tr := New()
	tr.Insert("book")

	assert.True(t, tr.Contains("book"))
	assert.True(t, tr.Contains("BOOK"))
	assert.False(t, tr.Contains("books"))
	assert.False(t, tr.Contains("boo"))
	assert.False(t, tr.Contains("bag"))
	assert.False(t, tr.Contains(""))
}

func TestCaseSensitivity(t *testing.T) {
	t.Run("sensitive", func(t *testing.T) {
		tr := NewWithOptions(true, true)
		tr.Insert("Orco")
		assert.False(t, tr.Contains("orco"))
		assert.True(t, tr.Contains("Orco"))
	})

	t.Run("insensitive", func(t *testing.T) {
		tr := NewWithOptions(false, true)
		tr.Insert("orca", "orco", "oro", "orwelliano")
		assert.True(t, tr.Contains("Orco"))
	})

	t.Run("fluent", func(t *testing.T) {
		tr := New().CaseSensitive()
		tr.Insert("Orco")
		assert.False(t, tr.Contains("orco"))
	})
}

func TestNormalisation(t *testing.T) {
	t.Run("folding on", func(t *testing.T) {
		tr := New()
		tr.Insert("Jürgen")
		assert.True(t, tr.Contains("jurgen"))
		assert.True(t, tr.Contains("JÜRGEN"))
		assert.Equal(t, []string{"jurgen"}, tr.Complete("Jür"))

		original, ok := tr.Original("Jurgen")
		require.True(t, ok)
		assert.Equal(t, "Jürgen", original)
	})

	t.Run("folding off", func(t *testing.T) {
		tr := New().WithoutNormalisation()
		tr.Insert("Jürgen")
		assert.False(t, tr.Contains("jurgen"))
		assert.True(t, tr.Contains("jürgen"))
	})

	t.Run("normalize helper", func(t *testing.T) {
		assert.Equal(t, "elodie", New().Normalize("Élodie"))
	})
}

func TestInsertIsIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("orca", "oro")
	before := tr.Complete("")

	tr.Insert("orca", "ORCA", "Orca")
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, before, tr.Complete(""))
	assert.True(t, tr.Contains("orca"))

	original, ok := tr.Original("orca")
	require.True(t, ok)
	assert.Equal(t, "Orca", original)
}

func TestEmptyWord(t *testing.T) {
	tr := New()
	assert.False(t, tr.Contains(""))

	tr.Insert("")
	assert.True(t, tr.Contains(""))
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, []string{""}, tr.Complete(""))

	tr.Insert("a")
	assert.Equal(t, []string{"", "a"}, tr.Complete(""))
}

func TestComplete(t *testing.T) {
	tr := New()
	tr.Insert("orca", "orco", "oro", "orwelliano", "book")

	testCases := []struct {
		prefix   string
		expected []string
	}{
		{"or", []string{"orca", "orco", "oro", "orwelliano"}},
		{"ora", []string{}},
		{"orc", []string{"orca", "orco"}},
		{"oro", []string{"oro"}},
		{"ORW", []string{"orwelliano"}},
		{"boo", []string{"book"}},
		{"books", []string{}},
		{"", []string{"book", "orca", "orco", "oro", "orwelliano"}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("prefix %q", tc.prefix), func(t *testing.T) {
			assert.Equal(t, tc.expected, tr.Complete(tc.prefix))
		})
	}
}

func TestCompleteOnEmptyTrie(t *testing.T) {
	tr := New()
	assert.Empty(t, tr.Complete(""))
	assert.NotNil(t, tr.Complete("x"))
}

func randomWord(rng *rand.Rand) string {
	letters := []rune("qwertyuiopasdfghjklzxcvbnm")
	word := make([]rune, 3+rng.Intn(12))
	for i := range word {
		word[i] = letters[rng.Intn(len(letters))]
	}
	return string(word)
}

func TestRandomVocabulary(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := New()
	inserted := make(map[string]bool)
	for len(inserted) < 2000 {
		w := randomWord(rng)
		inserted[w] = true
		tr.Insert(w)
	}

	assert.Equal(t, len(inserted), tr.Len())
	all := tr.Complete("")
	assert.Len(t, all, len(inserted))
	seen := make(map[string]bool, len(all))
	for _, w := range all {
		assert.True(t, inserted[w], w)
		assert.False(t, seen[w], "duplicate %s", w)
		seen[w] = true
	}

	for w := range inserted {
		require.True(t, tr.Contains(w), w)
		for _, completed := range tr.Complete(w[:2]) {
			assert.Equal(t, w[:2], completed[:2])
		}
	}

	misses := 0
	for misses < 200 {
		w := randomWord(rng)
		if inserted[w] {
			continue
		}
		misses++
		assert.False(t, tr.Contains(w), w)
	}
}

func TestConcurrentReads(t *testing.T) {
	tr := New()
	tr.Insert("orca", "orco", "oro", "orwelliano", "book")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, tr.Contains("Orco"))
				assert.Len(t, tr.Complete("or"), 4)
				m, err := tr.SearchApproximate("booklet", 0.3, 0)
				assert.NoError(t, err)
				assert.Equal(t, StatusAccepted, m.Status)
			}
		}()
	}
	wg.Wait()
}
