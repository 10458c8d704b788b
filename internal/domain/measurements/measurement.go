package measurements

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Measurement records how long one cryptographic operation took over how much input.
type Measurement struct {
	ID              string        `validate:"required,uuid4"`
	Tool            string        `validate:"required,oneof=aes rsa sha256 substitution"`
	Operation       string        `validate:"required,oneof=generate-key encrypt decrypt sign verify hash analyze"`
	Bits            int64         `validate:"min=0"`
	Elapsed         time.Duration `validate:"min=0"`
	Outcome         string        `validate:"required,oneof=success valid invalid"`
	DateTimeCreated time.Time     `validate:"required"`
}

// NewMeasurement creates a successful measurement over inputBytes bytes of input.
func NewMeasurement(tool, operation string, inputBytes int, elapsed time.Duration) *Measurement {
	return &Measurement{
		ID:              uuid.NewString(),
		Tool:            tool,
		Operation:       operation,
		Bits:            int64(inputBytes) * 8,
		Elapsed:         elapsed,
		Outcome:         OutcomeSuccess,
		DateTimeCreated: time.Now().UTC(),
	}
}

// BitsPerSecond returns the throughput of the operation. An operation that
// completed below the clock resolution reports zero.
func (m *Measurement) BitsPerSecond() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Bits) / m.Elapsed.Seconds()
}

// Validate for validating Measurement struct
func (m *Measurement) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
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
