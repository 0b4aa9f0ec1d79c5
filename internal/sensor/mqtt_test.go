package sensor

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/acpilot/acpilot/internal/mqttclient"
	"github.com/acpilot/acpilot/internal/mqttclient/mqtttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMQTTSensor(t *testing.T) {
	c := mqtttest.NewClient()
	s := NewMQTTSensor(c, "home/living/temperature", time.Minute, slog.New(slog.DiscardHandler))
	now := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- s.Run(ctx) }()
	require.Eventually(t, func() bool { return c.Subscribed("home/living/temperature") }, time.Second, 10*time.Millisecond)

	_, err := s.ReadTemperature(t.Context())
	assert.ErrorIs(t, err, ErrNoReading)

	c.Deliver("home/living/temperature", "27.5")
	temperature, err := s.ReadTemperature(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 27.5, temperature)

	c.Deliver("home/living/temperature", `{"temperature":25.25,"humidity":60}`)
	temperature, err = s.ReadTemperature(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 25.25, temperature)

	// invalid payloads keep the last valid reading
	c.Deliver("home/living/temperature", "foo")
	c.Deliver("home/living/temperature", `{"humidity":60}`)
	c.Deliver("home/living/temperature", "150")
	temperature, err = s.ReadTemperature(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 25.25, temperature)

	now = now.Add(2 * time.Minute)
	_, err = s.ReadTemperature(t.Context())
	assert.ErrorIs(t, err, ErrStaleReading)

	cancel()
	assert.NoError(t, <-errCh)
	assert.False(t, c.Subscribed("home/living/temperature"))
}

func TestMQTTSensor_Reconnect(t *testing.T) {
	broker := mqtttest.NewClient()
	c := mqttclient.New(broker, slog.New(slog.DiscardHandler))
	s := NewMQTTSensor(c, "home/living/temperature", time.Minute, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- s.Run(ctx) }()
	require.Eventually(t, func() bool { return broker.Subscribed("home/living/temperature") }, time.Second, 10*time.Millisecond)

	broker.Deliver("home/living/temperature", "27.5")

	// connection lost: the broker drops the subscription until the client reconnects
	broker.DropSubscriptions()
	c.Resubscribe()

	broker.Deliver("home/living/temperature", "26")
	temperature, err := s.ReadTemperature(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 26.0, temperature)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr assert.ErrorAssertionFunc
		want    float64
	}{
		{name: "plain", payload: " 21.5\n", wantErr: assert.NoError, want: 21.5},
		{name: "json", payload: `{"temperature": 19}`, wantErr: assert.NoError, want: 19},
		{name: "json without temperature", payload: `{"value": 19}`, wantErr: assert.Error},
		{name: "bad json", payload: `{"temperature":`, wantErr: assert.Error},
		{name: "text", payload: `warm`, wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			temperature, err := parseTemperature([]byte(tt.payload))
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, temperature)
		})
	}
}
