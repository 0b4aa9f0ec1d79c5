package sensor

import (
	"context"
	"fmt"

	"github.com/clambin/tado"
)

type TadoGetter interface {
	GetZones(context.Context) (tado.Zones, error)
	GetZoneInfo(context.Context, int) (tado.ZoneInfo, error)
}

var _ Sensor = &TadoSensor{}

// TadoSensor reads the inside temperature measured by a tadoº zone.
type TadoSensor struct {
	Client TadoGetter
	ZoneID int
}

func (s TadoSensor) ReadTemperature(ctx context.Context) (float64, error) {
	zoneInfo, err := s.Client.GetZoneInfo(ctx, s.ZoneID)
	if err != nil {
		return 0, fmt.Errorf("tado: %w", err)
	}
	temperature := zoneInfo.SensorDataPoints.InsideTemperature.Celsius
	if err = checkRange(temperature); err != nil {
		return 0, err
	}
	return temperature, nil
}

// LookupZone returns the ID of the zone with the given name.
func LookupZone(ctx context.Context, client TadoGetter, name string) (int, error) {
	zones, err := client.GetZones(ctx)
	if err != nil {
		return 0, fmt.Errorf("tado: %w", err)
	}
	for _, zone := range zones {
		if zone.Name == name {
			return zone.ID, nil
		}
	}
	return 0, fmt.Errorf("tado: zone %q not found", name)
}
