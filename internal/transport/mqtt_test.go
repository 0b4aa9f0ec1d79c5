package transport_test

import (
	"errors"
	"testing"

	"github.com/acpilot/acpilot/internal/mqttclient/mqtttest"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTransport(t *testing.T) {
	c := mqtttest.NewClient()
	s := transport.StateTransport{Client: c, Topic: "ac/living/set"}

	assert.ErrorIs(t, s.Transmit(t.Context()), transport.ErrNotConfigured)

	require.NoError(t, s.Configure(rules.ACConfig{
		Power:       true,
		Temperature: 28,
		FanSpeed:    rules.FanLow,
		Mode:        rules.ModeCool,
		VSwing:      rules.SwingMiddle,
		HSwing:      rules.SwingMiddle,
	}))
	require.NoError(t, s.Transmit(t.Context()))

	require.NoError(t, s.Configure(rules.OffConfig))
	require.NoError(t, s.Transmit(t.Context()))

	payloads := c.Payloads("ac/living/set")
	require.Len(t, payloads, 2)
	assert.JSONEq(t, `{"power":"on","mode":"cool","temperature":28,"fan":"low","vSwing":"middle","hSwing":"middle"}`, payloads[0])
	assert.JSONEq(t, `{"power":"off","mode":"cool","temperature":24,"fan":"auto","vSwing":"auto","hSwing":"auto"}`, payloads[1])

	c.PublishErr = errors.New("broker unavailable")
	assert.Error(t, s.Transmit(t.Context()))
}
