// Package transport sends AC configurations to the air conditioner.
//
// Sending is split in two steps: Configure stages the full target configuration and Transmit sends it. A backend
// that cannot stage a configuration reports an error from Configure and nothing is sent.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acpilot/acpilot/internal/rules"
)

var ErrNotConfigured = errors.New("transport: no configuration staged")

type Transport interface {
	Configure(rules.ACConfig) error
	Transmit(context.Context) error
}

var _ Transport = Repeater{}

// Repeater transmits every staged configuration Count times, waiting Gap between transmissions.
// Transmit only fails if every attempt failed.
//
// Only use Repeater with backends that send absolute state. Relative commands (like a temperature-up button) would
// be applied more than once.
type Repeater struct {
	Transport
	Count int
	Gap   time.Duration
}

func (r Repeater) Transmit(ctx context.Context) error {
	count := max(r.Count, 1)
	var errs []error
	var attempts int
	for i := range count {
		if i > 0 {
			if err := sleep(ctx, r.Gap); err != nil {
				break
			}
		}
		attempts++
		if err := r.Transport.Transmit(ctx); err != nil {
			errs = append(errs, fmt.Errorf("attempt %d: %w", i+1, err))
		}
	}
	if len(errs) == attempts {
		return errors.Join(errs...)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
