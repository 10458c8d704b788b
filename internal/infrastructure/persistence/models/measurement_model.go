package models

import (
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
)

// MeasurementModel is the GORM database model for measurements (infrastructure concern)
type MeasurementModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Tool            string    `gorm:"not null;index;type:varchar(20)"`
	Operation       string    `gorm:"not null;index;type:varchar(20)"`
	Bits            int64     `gorm:"not null"`
	ElapsedNanos    int64     `gorm:"not null"`
	Outcome         string    `gorm:"not null;type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (MeasurementModel) TableName() string {
	return "measurements"
}

// ToDomain converts GORM model to domain entity
func (m *MeasurementModel) ToDomain() *measurements.Measurement {
	return &measurements.Measurement{
		ID:              m.ID,
		Tool:            m.Tool,
		Operation:       m.Operation,
		Bits:            m.Bits,
		Elapsed:         time.Duration(m.ElapsedNanos),
		Outcome:         m.Outcome,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MeasurementModel) FromDomain(d *measurements.Measurement) {
	m.ID = d.ID
	m.Tool = d.Tool
	m.Operation = d.Operation
	m.Bits = d.Bits
	m.ElapsedNanos = int64(d.Elapsed)
	m.Outcome = d.Outcome
	m.DateTimeCreated = d.DateTimeCreated
}
