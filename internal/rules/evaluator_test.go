package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectActiveRule(t *testing.T) {
	tests := []struct {
		name       string
		rules      []Rule
		ctx        EvaluationContext
		wantMatch  bool
		wantID     int
		wantTarget ACConfig
	}{
		{
			name:      "day, warm: cool day",
			rules:     DefaultRules(),
			ctx:       EvaluationContext{Hour: 10, Temperature: 27.0},
			wantMatch: true,
			wantID:    1,
			wantTarget: ACConfig{
				Power: true, Temperature: 27, FanSpeed: FanHigh, Mode: ModeCool, VSwing: SwingAuto, HSwing: SwingAuto,
			},
		},
		{
			name:      "night, warm: cool night",
			rules:     DefaultRules(),
			ctx:       EvaluationContext{Hour: 23, Temperature: 27.0},
			wantMatch: true,
			wantID:    2,
			wantTarget: ACConfig{
				Power: true, Temperature: 28, FanSpeed: FanLow, Mode: ModeCool, VSwing: SwingMiddle, HSwing: SwingMiddle,
			},
		},
		{
			name:      "day, cool: turn off",
			rules:     DefaultRules(),
			ctx:       EvaluationContext{Hour: 14, Temperature: 25.0},
			wantMatch: true,
			wantID:    3,
			wantTarget: ACConfig{
				Power: false, Temperature: 24, FanSpeed: FanLow, Mode: ModeCool, VSwing: SwingAuto, HSwing: SwingAuto,
			},
		},
		{
			name:      "night, cold: turn off",
			rules:     DefaultRules(),
			ctx:       EvaluationContext{Hour: 3, Temperature: 10.0},
			wantMatch: true,
			wantID:    3,
			wantTarget: ACConfig{
				Power: false, Temperature: 24, FanSpeed: FanLow, Mode: ModeCool, VSwing: SwingAuto, HSwing: SwingAuto,
			},
		},
		{
			name:      "gap between rules",
			rules:     DefaultRules(),
			ctx:       EvaluationContext{Hour: 12, Temperature: 25.95},
			wantMatch: false,
		},
		{
			name:      "no rules",
			ctx:       EvaluationContext{Hour: 12, Temperature: 25},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, ok := SelectActiveRule(tt.ctx, tt.rules)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantID, r.ID)
				assert.Equal(t, tt.wantTarget, r.Target())
			}
		})
	}
}

func TestSelectActiveRule_FirstMatchWins(t *testing.T) {
	broad := DefaultTemplate()
	broad.ID = 1
	specific := DefaultTemplate()
	specific.ID = 2
	specific.StartHour, specific.EndHour = 10, 11
	specific.MinTemp, specific.MaxTemp = 20, 21

	r, ok := SelectActiveRule(EvaluationContext{Hour: 10, Temperature: 20.5}, []Rule{broad, specific})
	assert.True(t, ok)
	assert.Equal(t, 1, r.ID)

	r, ok = SelectActiveRule(EvaluationContext{Hour: 10, Temperature: 20.5}, []Rule{specific, broad})
	assert.True(t, ok)
	assert.Equal(t, 2, r.ID)
}

func TestSelectActiveRule_Disabled(t *testing.T) {
	r := DefaultTemplate()
	r.Enabled = false

	for hour := 0; hour < 24; hour++ {
		for _, temperature := range []float64{-20, 0, 16, 25.9, 26, 40} {
			_, ok := SelectActiveRule(EvaluationContext{Hour: hour, Temperature: temperature}, []Rule{r})
			assert.False(t, ok)
		}
	}
}

func TestEvaluationContext_IsValid(t *testing.T) {
	assert.True(t, EvaluationContext{Temperature: 21}.IsValid())
	assert.False(t, EvaluationContext{Temperature: math.NaN()}.IsValid())
	assert.False(t, EvaluationContext{Temperature: math.Inf(1)}.IsValid())
}
