package transport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/acpilot/acpilot/internal/rules"
)

var _ Transport = &LogTransport{}

// LogTransport only logs what would be sent. Used for dry runs.
type LogTransport struct {
	Logger  *slog.Logger
	lock    sync.Mutex
	pending *rules.ACConfig
	sent    []rules.ACConfig
}

func (l *LogTransport) Configure(cfg rules.ACConfig) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.pending = &cfg
	return nil
}

func (l *LogTransport) Transmit(_ context.Context) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.pending == nil {
		return ErrNotConfigured
	}
	l.Logger.Info("transmitting AC configuration", "config", *l.pending)
	l.sent = append(l.sent, *l.pending)
	return nil
}

// Sent returns all transmitted configurations.
func (l *LogTransport) Sent() []rules.ACConfig {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]rules.ACConfig(nil), l.sent...)
}
