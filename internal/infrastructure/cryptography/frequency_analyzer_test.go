//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rot13() cryptoalg.Mapping {
	mapping := make(cryptoalg.Mapping, 26)
	for c := byte('a'); c <= 'z'; c++ {
		mapping[c] = 'a' + (c-'a'+13)%26
	}
	return mapping
}

func TestFrequencyAnalyzer_Frequencies(t *testing.T) {
	analyzer := NewFrequencyAnalyzer()

	t.Run("CountsLettersOnly", func(t *testing.T) {
		freqs, total := analyzer.Frequencies("Hello, World! 42")
		require.Equal(t, 10, total)
		require.Len(t, freqs, 7)

		letters := make([]byte, 0, len(freqs))
		for _, f := range freqs {
			letters = append(letters, f.Letter)
		}
		assert.Equal(t, "lodehrw", string(letters))
		assert.Equal(t, 3, freqs[0].Count)
		assert.InDelta(t, 30.0, freqs[0].Percent, 1e-9)
		assert.InDelta(t, 10.0, freqs[6].Percent, 1e-9)
	})

	t.Run("NoLetters", func(t *testing.T) {
		freqs, total := analyzer.Frequencies("1234 !?")
		assert.Zero(t, total)
		assert.Empty(t, freqs)
	})
}

func TestFrequencyAnalyzer_FrequencyMapping(t *testing.T) {
	analyzer := NewFrequencyAnalyzer()

	freqs, _ := analyzer.Frequencies("Hello, World!")
	mapping, pairs := analyzer.FrequencyMapping(freqs)
	require.Len(t, pairs, 7)

	expected := cryptoalg.Mapping{'l': 'e', 'o': 't', 'd': 'a', 'e': 'o', 'h': 'n', 'r': 'h', 'w': 'i'}
	assert.Equal(t, expected, mapping)
	assert.Equal(t, byte('l'), pairs[0].Cipher)
	assert.InDelta(t, 12.22, pairs[0].EnglishPercent, 1e-9)

	t.Run("EnglishRanking", func(t *testing.T) {
		ranked := englishByRank()
		letters := make([]byte, 0, len(ranked))
		for _, f := range ranked {
			letters = append(letters, f.Letter)
		}
		assert.Equal(t, "etaonhisrdluwmgcfybpkvjxqz", string(letters))
	})
}

func TestFrequencyAnalyzer_Decrypt(t *testing.T) {
	analyzer := NewFrequencyAnalyzer()

	tests := []struct {
		name      string
		text      string
		base      cryptoalg.Mapping
		overrides cryptoalg.Mapping
		expected  string
	}{
		{"PreservesCaseAndPunctuation", "Uryyb, Jbeyq! 123", rot13(), nil, "Hello, World! 123"},
		{"UnmappedLetters", "abc", cryptoalg.Mapping{'a': 'x'}, nil, "x??"},
		{"OverridesWin", "Ab", cryptoalg.Mapping{'a': 'x', 'b': 'y'}, cryptoalg.Mapping{'a': 'q'}, "Qy"},
		{"OverridesWithoutBase", "ab", nil, cryptoalg.Mapping{'b': 'z'}, "?z"},
		{"NonASCIIUntouched", "é a", cryptoalg.Mapping{'a': 'b'}, nil, "é b"},
		{"Empty", "", rot13(), nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Decrypt(tt.text, tt.base, tt.overrides))
		})
	}
}

func TestFrequencyAnalyzer_WordPatterns(t *testing.T) {
	analyzer := NewFrequencyAnalyzer()

	t.Run("RanksShortWords", func(t *testing.T) {
		patterns := analyzer.WordPatterns("The cat and THE dog, the END. a a elephant", 0)

		words := make([]string, 0, len(patterns))
		for _, p := range patterns {
			words = append(words, p.Word)
		}
		assert.Equal(t, []string{"the", "a", "and", "cat", "dog", "end"}, words)
		assert.Equal(t, 3, patterns[0].Count)
		assert.Empty(t, patterns[0].Suggestion)
	})

	t.Run("Limit", func(t *testing.T) {
		patterns := analyzer.WordPatterns("the cat and the dog the a a", 2)
		require.Len(t, patterns, 2)
		assert.Equal(t, "the", patterns[0].Word)
		assert.Equal(t, "a", patterns[1].Word)
	})

	t.Run("StripsPunctuation", func(t *testing.T) {
		patterns := analyzer.WordPatterns("it's 123 --", 0)
		require.Len(t, patterns, 1)
		assert.Equal(t, "its", patterns[0].Word)
	})

	suggestions := []struct {
		word     string
		count    int
		expected string
	}{
		{"p", 11, "'I' or 'A'"},
		{"p", 10, ""},
		{"du", 6, "'OF', 'TO', 'IN', 'IT'"},
		{"cei", 6, "'THE', 'AND', 'FOR'"},
		{"xkpc", 4, "'THAT', 'WITH', 'HAVE'"},
		{"xkpc", 3, ""},
	}
	for _, tt := range suggestions {
		t.Run("Suggestion_"+tt.word, func(t *testing.T) {
			text := strings.Repeat(tt.word+" ", tt.count)
			patterns := analyzer.WordPatterns(text, 0)
			require.Len(t, patterns, 1)
			assert.Equal(t, tt.count, patterns[0].Count)
			assert.Equal(t, tt.expected, patterns[0].Suggestion)
		})
	}
}

func TestFrequencyAnalyzer_PatternHints(t *testing.T) {
	analyzer := NewFrequencyAnalyzer()

	t.Run("AllShapes", func(t *testing.T) {
		freqs, _ := analyzer.Frequencies("p pfg cd cei du")
		mapping, hints := analyzer.PatternHints(freqs)

		require.Len(t, hints, 5)
		assert.Equal(t, "du", hints[0].Cipher)
		assert.Equal(t, "of", hints[0].Plain)
		assert.Equal(t, cryptoalg.Mapping{'c': 't', 'd': 'o'}, hints[4].Mapping)
		assert.Equal(t, cryptoalg.Mapping{
			'd': 'o', 'u': 'f',
			'c': 't', 'e': 'h', 'i': 'e',
			'p': 'a', 'f': 'n', 'g': 'd',
		}, mapping)
	})

	t.Run("OnlyFrequentLetters", func(t *testing.T) {
		freqs, _ := analyzer.Frequencies("du du du")
		mapping, hints := analyzer.PatternHints(freqs)
		require.Len(t, hints, 1)
		assert.Equal(t, cryptoalg.Mapping{'d': 'o', 'u': 'f'}, mapping)
	})

	t.Run("RareLetters", func(t *testing.T) {
		freqs, _ := analyzer.Frequencies("du " + strings.Repeat("x", 100))
		mapping, hints := analyzer.PatternHints(freqs)
		assert.Empty(t, hints)
		assert.Empty(t, mapping)
	})
}

func TestParseMapping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected cryptoalg.Mapping
		wantErr  bool
	}{
		{"Pairs", "a=i, F=N", cryptoalg.Mapping{'a': 'i', 'f': 'n'}, false},
		{"Whitespace", "a=i f=n\tx=r", cryptoalg.Mapping{'a': 'i', 'f': 'n', 'x': 'r'}, false},
		{"Empty", "", cryptoalg.Mapping{}, false},
		{"LaterWins", "a=b,a=c", cryptoalg.Mapping{'a': 'c'}, false},
		{"MissingEquals", "ab", nil, true},
		{"TooLong", "ab=c", nil, true},
		{"NotLetters", "1=2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, err := ParseMapping(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, cryptoalg.ErrInvalidMapping)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mapping)
		})
	}
}
