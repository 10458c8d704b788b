package app

import (
	"context"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// MeasurementRecorder stores measurements in the history repository when one is configured.
// Storage problems are logged and never surface to the cryptographic operation.
type MeasurementRecorder struct {
	repo   measurements.MeasurementRepository
	logger logger.Logger
}

// NewMeasurementRecorder creates a recorder; repo may be nil to disable history.
func NewMeasurementRecorder(repo measurements.MeasurementRepository, logger logger.Logger) *MeasurementRecorder {
	return &MeasurementRecorder{
		repo:   repo,
		logger: logger,
	}
}

// Record persists m if history is enabled
func (r *MeasurementRecorder) Record(ctx context.Context, m *measurements.Measurement) {
	if r == nil || r.repo == nil || m == nil {
		return
	}

	if err := r.repo.Create(ctx, m); err != nil {
		r.logger.Warn("failed to record measurement for ", m.Tool, " ", m.Operation, ": ", err)
	}
}

// History lists recorded measurements. Without a repository it returns an empty list.
func (r *MeasurementRecorder) History(ctx context.Context, query *measurements.MeasurementQuery) ([]*measurements.Measurement, error) {
	if r == nil || r.repo == nil {
		return []*measurements.Measurement{}, nil
	}
	return r.repo.List(ctx, query)
}

// Enabled reports whether measurements are persisted
func (r *MeasurementRecorder) Enabled() bool {
	return r != nil && r.repo != nil
}
