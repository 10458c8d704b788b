package cryptography

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
)

// EnglishFrequencies holds the relative frequency in percent of each letter in English text.
var EnglishFrequencies = map[byte]float64{
	'a': 8.05, 'b': 1.67, 'c': 2.23, 'd': 5.10, 'e': 12.22,
	'f': 2.14, 'g': 2.30, 'h': 6.62, 'i': 6.28, 'j': 0.19,
	'k': 0.95, 'l': 4.08, 'm': 2.33, 'n': 6.95, 'o': 7.63,
	'p': 1.66, 'q': 0.06, 'r': 5.29, 's': 6.02, 't': 9.67,
	'u': 2.92, 'v': 0.82, 'w': 2.60, 'x': 0.11, 'y': 2.04,
	'z': 0.06,
}

// DefaultWordPatternLimit is how many short words a report lists
const DefaultWordPatternLimit = 15

// FrequencyAnalyzer implements cryptoalg.SubstitutionAnalyzer
type FrequencyAnalyzer struct{}

// NewFrequencyAnalyzer creates a FrequencyAnalyzer
func NewFrequencyAnalyzer() *FrequencyAnalyzer {
	return &FrequencyAnalyzer{}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Frequencies counts letters case-insensitively. Ties keep alphabetical order.
func (a *FrequencyAnalyzer) Frequencies(text string) ([]cryptoalg.LetterFrequency, int) {
	var counts [26]int
	total := 0
	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			counts[toLower(text[i])-'a']++
			total++
		}
	}

	freqs := make([]cryptoalg.LetterFrequency, 0, 26)
	for i, count := range counts {
		if count == 0 {
			continue
		}
		freqs = append(freqs, cryptoalg.LetterFrequency{
			Letter:  byte('a' + i),
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}

	slices.SortStableFunc(freqs, func(x, y cryptoalg.LetterFrequency) int {
		return cmp.Compare(y.Count, x.Count)
	})
	return freqs, total
}

// englishByRank returns the English letters most frequent first, ties alphabetical
func englishByRank() []cryptoalg.LetterFrequency {
	ranked := make([]cryptoalg.LetterFrequency, 0, len(EnglishFrequencies))
	for c := byte('a'); c <= 'z'; c++ {
		ranked = append(ranked, cryptoalg.LetterFrequency{Letter: c, Percent: EnglishFrequencies[c]})
	}
	slices.SortStableFunc(ranked, func(x, y cryptoalg.LetterFrequency) int {
		return cmp.Compare(y.Percent, x.Percent)
	})
	return ranked
}

// FrequencyMapping pairs the n-th most frequent cipher letter with the n-th most
// frequent English letter.
func (a *FrequencyAnalyzer) FrequencyMapping(freqs []cryptoalg.LetterFrequency) (cryptoalg.Mapping, []cryptoalg.MappingPair) {
	english := englishByRank()
	n := min(len(freqs), len(english))

	mapping := make(cryptoalg.Mapping, n)
	pairs := make([]cryptoalg.MappingPair, 0, n)
	for i := 0; i < n; i++ {
		mapping[freqs[i].Letter] = english[i].Letter
		pairs = append(pairs, cryptoalg.MappingPair{
			Cipher:         freqs[i].Letter,
			Plain:          english[i].Letter,
			CipherPercent:  freqs[i].Percent,
			EnglishPercent: english[i].Percent,
		})
	}
	return mapping, pairs
}

func suggestWords(word string, count int) string {
	switch {
	case len(word) == 1 && count > 10:
		return "'I' or 'A'"
	case len(word) == 2 && count > 5:
		return "'OF', 'TO', 'IN', 'IT'"
	case len(word) == 3 && count > 5:
		return "'THE', 'AND', 'FOR'"
	case len(word) == 4 && count > 3:
		return "'THAT', 'WITH', 'HAVE'"
	}
	return ""
}

// WordPatterns splits text on whitespace, drops everything but letters from each
// word and counts the words of one to four letters. A limit of zero or less
// returns every word.
func (a *FrequencyAnalyzer) WordPatterns(text string, limit int) []cryptoalg.WordPattern {
	counts := make(map[string]int)
	for _, field := range strings.Fields(text) {
		var word strings.Builder
		for i := 0; i < len(field); i++ {
			if isLetter(field[i]) {
				word.WriteByte(toLower(field[i]))
			}
		}
		if n := word.Len(); n >= 1 && n <= 4 {
			counts[word.String()]++
		}
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	slices.Sort(words)
	slices.SortStableFunc(words, func(x, y string) int {
		return cmp.Compare(counts[y], counts[x])
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	patterns := make([]cryptoalg.WordPattern, 0, len(words))
	for _, word := range words {
		patterns = append(patterns, cryptoalg.WordPattern{
			Word:       word,
			Count:      counts[word],
			Suggestion: suggestWords(word, counts[word]),
		})
	}
	return patterns
}

// wordShape is a guess that cipher spells plain when every letter of cipher is
// more frequent than threshold percent.
type wordShape struct {
	cipher    string
	plain     string
	threshold float64
	reason    string
}

// knownShapes are tried in order; later hints override earlier ones.
var knownShapes = []wordShape{
	{"du", "of", 3, "common preposition"},
	{"cei", "the", 3, "most common word"},
	{"pfg", "and", 2, "common conjunction"},
	{"p", "a", 3, "article"},
	{"cd", "to", 3, "common preposition"},
}

// PatternHints returns the combined mapping of every known word shape whose
// letters are frequent enough in the ciphertext, and the hints that produced it.
func (a *FrequencyAnalyzer) PatternHints(freqs []cryptoalg.LetterFrequency) (cryptoalg.Mapping, []cryptoalg.PatternHint) {
	percent := make(map[byte]float64, len(freqs))
	for _, f := range freqs {
		percent[f.Letter] = f.Percent
	}

	combined := make(cryptoalg.Mapping)
	var hints []cryptoalg.PatternHint
	for _, shape := range knownShapes {
		frequent := true
		for i := 0; i < len(shape.cipher); i++ {
			if percent[shape.cipher[i]] <= shape.threshold {
				frequent = false
				break
			}
		}
		if !frequent {
			continue
		}

		mapping := make(cryptoalg.Mapping, len(shape.cipher))
		for i := 0; i < len(shape.cipher); i++ {
			mapping[shape.cipher[i]] = shape.plain[i]
			combined[shape.cipher[i]] = shape.plain[i]
		}
		hints = append(hints, cryptoalg.PatternHint{
			Cipher:  shape.cipher,
			Plain:   shape.plain,
			Reason:  shape.reason,
			Mapping: mapping,
		})
	}
	return combined, hints
}

// Decrypt substitutes every ASCII letter of text.
func (a *FrequencyAnalyzer) Decrypt(text string, base, overrides cryptoalg.Mapping) string {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isLetter(c) {
			out.WriteByte(c)
			continue
		}

		lower := toLower(c)
		plain, ok := overrides[lower]
		if !ok {
			plain, ok = base[lower]
		}
		switch {
		case !ok:
			out.WriteByte('?')
		case c != lower:
			out.WriteByte(toUpper(plain))
		default:
			out.WriteByte(plain)
		}
	}
	return out.String()
}

// ParseMapping reads overrides written as "c=p" pairs separated by commas or
// whitespace, for example "a=i, f=n".
func ParseMapping(s string) (cryptoalg.Mapping, error) {
	mapping := make(cryptoalg.Mapping)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	for _, field := range fields {
		cipher, plain, found := strings.Cut(field, "=")
		if !found || len(cipher) != 1 || len(plain) != 1 || !isLetter(cipher[0]) || !isLetter(plain[0]) {
			return nil, fmt.Errorf("%w: %q", cryptoalg.ErrInvalidMapping, field)
		}
		mapping[toLower(cipher[0])] = toLower(plain[0])
	}
	return mapping, nil
}
