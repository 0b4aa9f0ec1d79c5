package sensor

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var _ Sensor = FileSensor{}

// FileSensor reads a temperature from a file, as exposed by 1-Wire and hwmon drivers
// (e.g. /sys/bus/w1/devices/28-*/temperature holds millidegrees, so Scale is 0.001).
type FileSensor struct {
	Path  string
	Scale float64
}

func (s FileSensor) ReadTemperature(_ context.Context) (float64, error) {
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, fmt.Errorf("read sensor: %w", err)
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse sensor: %w", err)
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	temperature := raw * scale
	if err = checkRange(temperature); err != nil {
		return 0, err
	}
	return temperature, nil
}
