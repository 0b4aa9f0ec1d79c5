package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_MatchesTime(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		hour  int
		want  bool
	}{
		{name: "same day: before", start: 8, end: 19, hour: 7, want: false},
		{name: "same day: start is inclusive", start: 8, end: 19, hour: 8, want: true},
		{name: "same day: inside", start: 8, end: 19, hour: 12, want: true},
		{name: "same day: end is exclusive", start: 8, end: 19, hour: 19, want: false},
		{name: "overnight: late", start: 22, end: 6, hour: 23, want: true},
		{name: "overnight: early", start: 22, end: 6, hour: 2, want: true},
		{name: "overnight: day", start: 22, end: 6, hour: 10, want: false},
		{name: "overnight: end is exclusive", start: 22, end: 6, hour: 6, want: false},
		{name: "equal bounds cover the whole day", start: 5, end: 5, hour: 17, want: true},
		{name: "no start hour", start: AnyHour, end: 6, hour: 12, want: true},
		{name: "no end hour", start: 22, end: AnyHour, hour: 12, want: true},
		{name: "no hours", start: AnyHour, end: AnyHour, hour: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Rule{StartHour: tt.start, EndHour: tt.end}
			assert.Equal(t, tt.want, r.MatchesTime(tt.hour))
		})
	}
}

func TestRule_MatchesTime_AllHours(t *testing.T) {
	for start := 0; start < 24; start++ {
		for end := 0; end < 24; end++ {
			r := Rule{StartHour: start, EndHour: end}
			for hour := 0; hour < 24; hour++ {
				var want bool
				if end > start {
					want = start <= hour && hour < end
				} else {
					want = hour >= start || hour < end
				}
				assert.Equal(t, want, r.MatchesTime(hour), "start: %d, end: %d, hour: %d", start, end, hour)
			}
		}
	}
}

func TestRule_MatchesTemperature(t *testing.T) {
	tests := []struct {
		name        string
		min         float64
		max         float64
		temperature float64
		want        bool
	}{
		{name: "inside", min: 20, max: 30, temperature: 25, want: true},
		{name: "above", min: 20, max: 30, temperature: 35, want: false},
		{name: "below", min: 20, max: 30, temperature: 15, want: false},
		{name: "lower bound is inclusive", min: 20, max: 30, temperature: 20, want: true},
		{name: "upper bound is inclusive", min: 20, max: 30, temperature: 30, want: true},
		{name: "no lower bound", min: AnyTemp, max: 25.9, temperature: -20, want: true},
		{name: "no lower bound: above", min: AnyTemp, max: 25.9, temperature: 26, want: false},
		{name: "no upper bound", min: 26, max: AnyTemp, temperature: 45, want: true},
		{name: "no bounds", min: AnyTemp, max: AnyTemp, temperature: 100, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Rule{MinTemp: tt.min, MaxTemp: tt.max}
			assert.Equal(t, tt.want, r.MatchesTemperature(tt.temperature))
		})
	}
}

func TestRule_Target(t *testing.T) {
	r := Rule{ACOn: true, SetTemp: 27.6, FanSpeed: FanHigh, Mode: ModeDry, VSwing: SwingLow, HSwing: SwingHigh}
	assert.Equal(t, ACConfig{
		Power:       true,
		Temperature: 27,
		FanSpeed:    FanHigh,
		Mode:        ModeDry,
		VSwing:      SwingLow,
		HSwing:      SwingHigh,
	}, r.Target())
}

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Rule)
		wantField string
	}{
		{name: "valid", modify: func(*Rule) {}},
		{name: "start hour too high", modify: func(r *Rule) { r.StartHour = 24 }, wantField: "startHour"},
		{name: "start hour negative", modify: func(r *Rule) { r.StartHour = -2 }, wantField: "startHour"},
		{name: "end hour too high", modify: func(r *Rule) { r.EndHour = 25 }, wantField: "endHour"},
		{name: "inverted temperature window", modify: func(r *Rule) { r.MinTemp, r.MaxTemp = 30, 20 }, wantField: "minTemp"},
		{name: "set temperature too low", modify: func(r *Rule) { r.SetTemp = 15 }, wantField: "setTemp"},
		{name: "set temperature too high", modify: func(r *Rule) { r.SetTemp = 31 }, wantField: "setTemp"},
		{name: "fan speed", modify: func(r *Rule) { r.FanSpeed = 4 }, wantField: "fanSpeed"},
		{name: "mode", modify: func(r *Rule) { r.Mode = 5 }, wantField: "mode"},
		{name: "vertical swing", modify: func(r *Rule) { r.VSwing = -1 }, wantField: "vSwing"},
		{name: "horizontal swing", modify: func(r *Rule) { r.HSwing = 4 }, wantField: "hSwing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := DefaultTemplate()
			tt.modify(&r)
			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tt.wantField, validationErr.Field)
			}
		})
	}
}

func TestDefaultRules_Valid(t *testing.T) {
	for _, r := range DefaultRules() {
		assert.NoError(t, r.Validate(), r.Name)
	}
	assert.NoError(t, DefaultTemplate().Validate())
}

func TestRule_Description(t *testing.T) {
	defaults := DefaultRules()
	assert.Equal(t, "8:00-19:00, ≥26.0º", defaults[0].Description())
	assert.Equal(t, "any time, ≤25.9º", defaults[2].Description())
}
