package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// HashService produces SHA-256 digests of console text and files
type HashService struct {
	hasher   cryptoalg.Hasher
	recorder *MeasurementRecorder
	logger   logger.Logger
}

// NewHashService creates a new HashService instance
func NewHashService(hasher cryptoalg.Hasher, recorder *MeasurementRecorder, logger logger.Logger) (*HashService, error) {
	if hasher == nil {
		return nil, errors.New("hasher cannot be nil")
	}
	return &HashService{
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// HashText returns the hex digest of text
func (s *HashService) HashText(ctx context.Context, text string) (string, *measurements.Measurement) {
	start := time.Now()
	digest := s.hasher.SumText(text)
	elapsed := time.Since(start)

	m := measurements.NewMeasurement(measurements.ToolSHA256, measurements.OperationHash, len(text), elapsed)
	s.recorder.Record(ctx, m)

	return digest, m
}

// HashFile returns the hex digest of the contents of path
func (s *HashService) HashFile(ctx context.Context, path string) (string, *measurements.Measurement, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input file: %w", err)
	}

	start := time.Now()
	digest := s.hasher.Sum(data)
	elapsed := time.Since(start)

	m := measurements.NewMeasurement(measurements.ToolSHA256, measurements.OperationHash, len(data), elapsed)
	s.recorder.Record(ctx, m)

	s.logger.Debug("Hashed ", path)
	return digest, m, nil
}
