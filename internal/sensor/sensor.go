// Package sensor reads the room temperature that drives rule evaluation.
//
// A reading that cannot be trusted is reported as an error. Callers treat any error, or a NaN reading,
// as "no valid reading" and skip the cycle.
package sensor

import (
	"context"
	"errors"
)

var (
	ErrNoReading    = errors.New("no temperature reading received")
	ErrStaleReading = errors.New("temperature reading is stale")
	ErrOutOfRange   = errors.New("temperature reading out of range")
)

// Plausible bounds for an indoor temperature in ºC. Anything outside is treated as a sensor fault.
const (
	MinTemperature = -40.0
	MaxTemperature = 80.0
)

type Sensor interface {
	ReadTemperature(ctx context.Context) (float64, error)
}

func checkRange(temperature float64) error {
	// NaN fails both comparisons
	if !(temperature >= MinTemperature && temperature <= MaxTemperature) {
		return ErrOutOfRange
	}
	return nil
}
