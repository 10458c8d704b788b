package cryptoalg

// LetterFrequency is how often one letter occurs among the letters of a text.
type LetterFrequency struct {
	Letter  byte
	Count   int
	Percent float64
}

// Mapping maps lowercase ciphertext letters to lowercase plaintext letters.
type Mapping map[byte]byte

// MappingPair is one entry of a frequency-ranked mapping together with the
// frequencies that paired the two letters.
type MappingPair struct {
	Cipher         byte
	Plain          byte
	CipherPercent  float64
	EnglishPercent float64
}

// WordPattern is a short ciphertext word with its number of occurrences and,
// when it is frequent enough, the English words it probably stands for.
type WordPattern struct {
	Word       string
	Count      int
	Suggestion string
}

// PatternHint is a mapping guessed from a common English word shape.
type PatternHint struct {
	Cipher  string
	Plain   string
	Reason  string
	Mapping Mapping
}

// SubstitutionAnalyzer attacks monoalphabetic substitution ciphers by
// letter-frequency analysis against English.
type SubstitutionAnalyzer interface {
	// Frequencies counts the ASCII letters of text case-insensitively, most frequent first.
	Frequencies(text string) ([]LetterFrequency, int)

	// FrequencyMapping pairs cipher letters with English letters of the same frequency rank.
	FrequencyMapping(freqs []LetterFrequency) (Mapping, []MappingPair)

	// WordPatterns returns the most frequent words of one to four letters.
	WordPatterns(text string, limit int) []WordPattern

	// PatternHints guesses mappings for common short English words.
	PatternHints(freqs []LetterFrequency) (Mapping, []PatternHint)

	// Decrypt applies base with overrides taking precedence. Letters without a
	// mapping become '?'; everything else is copied and case is preserved.
	Decrypt(text string, base, overrides Mapping) string
}
