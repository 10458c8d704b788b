//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"

	"github.com/stretchr/testify/assert"
)

func TestMeasurementModel_ToDomain(t *testing.T) {
	model := &MeasurementModel{
		ID:              "test-id",
		Tool:            measurements.ToolAES,
		Operation:       measurements.OperationEncrypt,
		Bits:            4096,
		ElapsedNanos:    1500,
		Outcome:         measurements.OutcomeSuccess,
		DateTimeCreated: time.Now(),
	}

	m := model.ToDomain()

	assert.Equal(t, model.ID, m.ID)
	assert.Equal(t, model.Tool, m.Tool)
	assert.Equal(t, model.Operation, m.Operation)
	assert.Equal(t, model.Bits, m.Bits)
	assert.Equal(t, 1500*time.Nanosecond, m.Elapsed)
	assert.Equal(t, model.Outcome, m.Outcome)
	assert.Equal(t, model.DateTimeCreated, m.DateTimeCreated)
}

func TestMeasurementModel_FromDomain(t *testing.T) {
	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationSign, 64, 3*time.Millisecond)

	model := &MeasurementModel{}
	model.FromDomain(m)

	assert.Equal(t, m.ID, model.ID)
	assert.Equal(t, m.Tool, model.Tool)
	assert.Equal(t, m.Operation, model.Operation)
	assert.Equal(t, int64(512), model.Bits)
	assert.Equal(t, int64(3_000_000), model.ElapsedNanos)
	assert.Equal(t, m.Outcome, model.Outcome)
	assert.Equal(t, m.DateTimeCreated, model.DateTimeCreated)
	assert.Equal(t, "measurements", model.TableName())
}
