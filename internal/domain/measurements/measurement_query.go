package measurements

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MeasurementQuery filters and pages the measurement history.
// Results are ordered newest first.
type MeasurementQuery struct {
	Tool      string `validate:"omitempty,oneof=aes rsa sha256 substitution"`
	Operation string `validate:"omitempty,oneof=generate-key encrypt decrypt sign verify hash analyze"`
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewMeasurementQuery creates a query without filters
func NewMeasurementQuery() *MeasurementQuery {
	return &MeasurementQuery{}
}

// Validate for validating MeasurementQuery struct
func (q *MeasurementQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
