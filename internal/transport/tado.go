package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/acpilot/acpilot/internal/rules"
)

// OffTemperature is the overlay temperature that switches a tadoº zone off.
const OffTemperature = 5.0

type TadoSetter interface {
	SetZoneOverlay(context.Context, int, float64) error
	DeleteZoneOverlay(context.Context, int) error
}

var _ Transport = &TadoTransport{}

// TadoTransport controls a tadoº Smart AC zone through a manual overlay. tadoº overlays only carry the target
// temperature: mode, fan & swing are left to the zone's own settings.
type TadoTransport struct {
	Client TadoSetter
	ZoneID int
	Logger *slog.Logger
	lock   sync.Mutex
	target *rules.ACConfig
}

func (t *TadoTransport) Configure(cfg rules.ACConfig) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.target = &cfg
	return nil
}

func (t *TadoTransport) Transmit(ctx context.Context) error {
	t.lock.Lock()
	target := t.target
	t.lock.Unlock()
	if target == nil {
		return ErrNotConfigured
	}

	temperature := OffTemperature
	if target.Power {
		temperature = float64(target.Temperature)
		t.Logger.Debug("tado overlay ignores mode, fan & swing", "config", *target)
	}
	if err := t.Client.SetZoneOverlay(ctx, t.ZoneID, temperature); err != nil {
		return fmt.Errorf("tado: set overlay: %w", err)
	}
	return nil
}

// Release removes the overlay, handing the zone back to its tadoº schedule.
func (t *TadoTransport) Release(ctx context.Context) error {
	if err := t.Client.DeleteZoneOverlay(ctx, t.ZoneID); err != nil {
		return fmt.Errorf("tado: delete overlay: %w", err)
	}
	return nil
}
