package tracker

import (
	"testing"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/stretchr/testify/assert"
)

func TestTracker_HasChanged(t *testing.T) {
	base := rules.ACConfig{Power: true, Temperature: 24, FanSpeed: rules.FanLow, Mode: rules.ModeCool, VSwing: rules.SwingAuto, HSwing: rules.SwingAuto}

	tests := []struct {
		name     string
		modify   func(*rules.ACConfig)
		want     bool
		wantDiff []string
	}{
		{name: "same", modify: func(*rules.ACConfig) {}, want: false, wantDiff: []string{}},
		{name: "power", modify: func(c *rules.ACConfig) { c.Power = false }, want: true, wantDiff: []string{"power"}},
		{name: "temperature", modify: func(c *rules.ACConfig) { c.Temperature = 26 }, want: true, wantDiff: []string{"temperature"}},
		{name: "fan", modify: func(c *rules.ACConfig) { c.FanSpeed = rules.FanHigh }, want: true, wantDiff: []string{"fanSpeed"}},
		{name: "mode", modify: func(c *rules.ACConfig) { c.Mode = rules.ModeHeat }, want: true, wantDiff: []string{"mode"}},
		{name: "vertical swing", modify: func(c *rules.ACConfig) { c.VSwing = rules.SwingLow }, want: true, wantDiff: []string{"vSwing"}},
		{name: "horizontal swing", modify: func(c *rules.ACConfig) { c.HSwing = rules.SwingHigh }, want: true, wantDiff: []string{"hSwing"}},
		{
			name:     "multiple",
			modify:   func(c *rules.ACConfig) { c.Temperature = 20; c.Mode = rules.ModeHeat },
			want:     true,
			wantDiff: []string{"mode", "temperature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := New()
			tr.Commit(base)

			candidate := base
			tt.modify(&candidate)
			assert.Equal(t, tt.want, tr.HasChanged(candidate))
			assert.ElementsMatch(t, tt.wantDiff, tr.Diff(candidate).List())
		})
	}
}

func TestTracker_Commit(t *testing.T) {
	tr := New()
	assert.Equal(t, rules.OffConfig, tr.Current())
	assert.False(t, tr.HasChanged(rules.OffConfig))

	for _, r := range rules.DefaultRules() {
		candidate := r.Target()
		tr.Commit(candidate)
		assert.False(t, tr.HasChanged(candidate))
		assert.Equal(t, candidate, tr.Current())
	}
}
