package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// SubstitutionReport is the full frequency attack on one ciphertext
type SubstitutionReport struct {
	Ciphertext   string
	Frequencies  []cryptoalg.LetterFrequency
	TotalLetters int
	Pairs        []cryptoalg.MappingPair
	Mapping      cryptoalg.Mapping
	Initial      string
	WordPatterns []cryptoalg.WordPattern
	Hints        []cryptoalg.PatternHint
	HintMapping  cryptoalg.Mapping
	Improved     string
	// Final is set only when overrides were given. They apply on top of the hints.
	Final string
}

// SubstitutionService breaks monoalphabetic substitution ciphers by frequency analysis
type SubstitutionService struct {
	analyzer     cryptoalg.SubstitutionAnalyzer
	patternLimit int
	recorder     *MeasurementRecorder
	logger       logger.Logger
}

// NewSubstitutionService creates a new SubstitutionService instance listing at most patternLimit short words
func NewSubstitutionService(analyzer cryptoalg.SubstitutionAnalyzer, patternLimit int, recorder *MeasurementRecorder, logger logger.Logger) (*SubstitutionService, error) {
	if analyzer == nil {
		return nil, errors.New("analyzer cannot be nil")
	}
	return &SubstitutionService{
		analyzer:     analyzer,
		patternLimit: patternLimit,
		recorder:     recorder,
		logger:       logger,
	}, nil
}

// Analyze runs every step of the attack on ciphertext and times the whole run
func (s *SubstitutionService) Analyze(ctx context.Context, ciphertext string, overrides cryptoalg.Mapping) (*SubstitutionReport, *measurements.Measurement) {
	start := time.Now()

	report := &SubstitutionReport{Ciphertext: ciphertext}
	report.Frequencies, report.TotalLetters = s.analyzer.Frequencies(ciphertext)
	report.Mapping, report.Pairs = s.analyzer.FrequencyMapping(report.Frequencies)
	report.Initial = s.analyzer.Decrypt(ciphertext, report.Mapping, nil)
	report.WordPatterns = s.analyzer.WordPatterns(ciphertext, s.patternLimit)
	report.HintMapping, report.Hints = s.analyzer.PatternHints(report.Frequencies)
	report.Improved = s.analyzer.Decrypt(ciphertext, report.Mapping, report.HintMapping)

	if len(overrides) > 0 {
		combined := make(cryptoalg.Mapping, len(report.HintMapping)+len(overrides))
		maps.Copy(combined, report.HintMapping)
		maps.Copy(combined, overrides)
		report.Final = s.analyzer.Decrypt(ciphertext, report.Mapping, combined)
	}

	elapsed := time.Since(start)

	m := measurements.NewMeasurement(measurements.ToolSubstitution, measurements.OperationAnalyze, len(ciphertext), elapsed)
	s.recorder.Record(ctx, m)

	s.logger.Debug("Analyzed substitution ciphertext of ", report.TotalLetters, " letters")
	return report, m
}

// Decrypt applies the frequency-ranked mapping of ciphertext with overrides taking precedence
func (s *SubstitutionService) Decrypt(ctx context.Context, ciphertext string, overrides cryptoalg.Mapping) (string, *measurements.Measurement) {
	start := time.Now()
	freqs, _ := s.analyzer.Frequencies(ciphertext)
	mapping, _ := s.analyzer.FrequencyMapping(freqs)
	plaintext := s.analyzer.Decrypt(ciphertext, mapping, overrides)
	elapsed := time.Since(start)

	m := measurements.NewMeasurement(measurements.ToolSubstitution, measurements.OperationDecrypt, len(ciphertext), elapsed)
	s.recorder.Record(ctx, m)

	return plaintext, m
}

// ReadCiphertext loads a ciphertext file
func (s *SubstitutionService) ReadCiphertext(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
