package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer(t *testing.T) {
	testCases := []struct {
		name       string
		normalizer Normalizer
		input      string
		expected   string
	}{
		{"default folds and lowers", Default(), "Jürgen", "jurgen"},
		{"case sensitive keeps upper", Normalizer{CaseSensitive: true, FoldASCII: true}, "Élodie", "Elodie"},
		{"no folding keeps accents", Normalizer{}, "Ñandú", "ñandú"},
		{"nothing applied", Normalizer{CaseSensitive: true}, "Ñandú", "Ñandú"},
		{"no decomposition", Default(), "Straße", "straße"},
		{"empty", Default(), "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.normalizer.String(tc.input))
		})
	}
}

func TestRunesKeepsLength(t *testing.T) {
	n := Default()
	assert.Equal(t, []rune("orwelliano"), n.Runes("Orwellianó"))
	assert.Len(t, n.Runes("café"), 4)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "aeiou", Fold("áéíóú"))
	assert.Equal(t, "ABC", Fold("ABC"))
}
