package transport_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

type flakyTransport struct {
	transport.LogTransport
	failures int
	calls    int
}

func (f *flakyTransport) Transmit(ctx context.Context) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("no ack")
	}
	return f.LogTransport.Transmit(ctx)
}

func TestRepeater(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		failures  int
		wantErr   assert.ErrorAssertionFunc
		wantCalls int
		wantSent  int
	}{
		{name: "default", count: 0, wantErr: assert.NoError, wantCalls: 1, wantSent: 1},
		{name: "repeated", count: 3, wantErr: assert.NoError, wantCalls: 3, wantSent: 3},
		{name: "partial failure", count: 3, failures: 2, wantErr: assert.NoError, wantCalls: 3, wantSent: 1},
		{name: "all failed", count: 2, failures: 2, wantErr: assert.Error, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := flakyTransport{LogTransport: transport.LogTransport{Logger: discardLogger}, failures: tt.failures}
			r := transport.Repeater{Transport: &f, Count: tt.count}
			require.NoError(t, r.Configure(rules.OffConfig))
			tt.wantErr(t, r.Transmit(t.Context()))
			assert.Equal(t, tt.wantCalls, f.calls)
			assert.Len(t, f.Sent(), tt.wantSent)
		})
	}
}

func TestLogTransport(t *testing.T) {
	l := transport.LogTransport{Logger: discardLogger}
	assert.ErrorIs(t, l.Transmit(t.Context()), transport.ErrNotConfigured)

	cfg := rules.ACConfig{Power: true, Temperature: 27, FanSpeed: rules.FanHigh}
	require.NoError(t, l.Configure(cfg))
	require.NoError(t, l.Transmit(t.Context()))
	assert.Equal(t, []rules.ACConfig{cfg}, l.Sent())
}
