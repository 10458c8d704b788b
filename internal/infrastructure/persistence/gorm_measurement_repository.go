package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"

	"gorm.io/gorm"
)

// GormMeasurementRepository implements measurements.MeasurementRepository on GORM
type GormMeasurementRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMeasurementRepository creates a new GORM-based MeasurementRepository implementation
func NewGormMeasurementRepository(db *gorm.DB, logger logger.Logger) (*GormMeasurementRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &GormMeasurementRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Create validates and stores a measurement
func (r *GormMeasurementRepository) Create(ctx context.Context, measurement *measurements.Measurement) error {
	if err := measurement.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MeasurementModel{}
	model.FromDomain(measurement)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}

	r.logger.Debug("Created measurement with id ", measurement.ID)
	return nil
}

// List returns measurements matching query, newest first
func (r *GormMeasurementRepository) List(ctx context.Context, query *measurements.MeasurementQuery) ([]*measurements.Measurement, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MeasurementModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MeasurementModel{})

	if query.Tool != "" {
		dbQuery = dbQuery.Where("tool = ?", query.Tool)
	}
	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}

	dbQuery = dbQuery.Order("date_time_created desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch measurements: %w", err)
	}

	domainList := make([]*measurements.Measurement, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
