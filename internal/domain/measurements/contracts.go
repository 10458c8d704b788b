package measurements

import "context"

// MeasurementRepository persists measurement history
type MeasurementRepository interface {
	Create(ctx context.Context, measurement *Measurement) error
	List(ctx context.Context, query *MeasurementQuery) ([]*Measurement, error)
}
