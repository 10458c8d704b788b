// Package models contains the GORM row types of the measurement history.
package models
