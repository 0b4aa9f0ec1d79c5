package rules

import (
	"log/slog"
	"strconv"
)

const (
	// AnyHour marks an hour bound as unconstrained.
	AnyHour = -1
	// AnyTemp marks a temperature bound as unconstrained.
	AnyTemp = -999.0
)

// A Rule maps a time window and a temperature window to a target AC configuration.
type Rule struct {
	Name      string   `json:"name" yaml:"name"`
	ID        int      `json:"id" yaml:"id"`
	StartHour int      `json:"startHour" yaml:"startHour"`
	EndHour   int      `json:"endHour" yaml:"endHour"`
	MinTemp   float64  `json:"minTemp" yaml:"minTemp"`
	MaxTemp   float64  `json:"maxTemp" yaml:"maxTemp"`
	SetTemp   float64  `json:"setTemp" yaml:"setTemp"`
	FanSpeed  FanSpeed `json:"fanSpeed" yaml:"fanSpeed"`
	Mode      Mode     `json:"mode" yaml:"mode"`
	VSwing    Swing    `json:"vSwing" yaml:"vSwing"`
	HSwing    Swing    `json:"hSwing" yaml:"hSwing"`
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	ACOn      bool     `json:"acOn" yaml:"acOn"`
}

// HasTimeWindow reports whether both hour bounds are set.
func (r Rule) HasTimeWindow() bool {
	return r.StartHour != AnyHour && r.EndHour != AnyHour
}

// MatchesTime reports whether hour falls inside the rule's time window. A window whose end hour is not after its
// start hour wraps past midnight.
func (r Rule) MatchesTime(hour int) bool {
	if !r.HasTimeWindow() {
		return true
	}
	if r.EndHour > r.StartHour {
		return hour >= r.StartHour && hour < r.EndHour
	}
	return hour >= r.StartHour || hour < r.EndHour
}

// MatchesTemperature reports whether temperature falls inside [MinTemp, MaxTemp]. Unconstrained bounds always match.
func (r Rule) MatchesTemperature(temperature float64) bool {
	if r.MinTemp != AnyTemp && temperature < r.MinTemp {
		return false
	}
	if r.MaxTemp != AnyTemp && temperature > r.MaxTemp {
		return false
	}
	return true
}

// Matches reports whether the rule is enabled and both its conditions hold for the evaluation context.
func (r Rule) Matches(ctx EvaluationContext) bool {
	return r.Enabled && r.MatchesTime(ctx.Hour) && r.MatchesTemperature(ctx.Temperature)
}

// Target returns the AC configuration the rule asks for.
func (r Rule) Target() ACConfig {
	return ACConfig{
		Power:       r.ACOn,
		Temperature: int(r.SetTemp),
		FanSpeed:    r.FanSpeed,
		Mode:        r.Mode,
		VSwing:      r.VSwing,
		HSwing:      r.HSwing,
	}
}

// Validate checks that all fields are in range.
func (r Rule) Validate() error {
	if r.StartHour != AnyHour && (r.StartHour < 0 || r.StartHour > 23) {
		return &ValidationError{Field: "startHour", Reason: "must be between 0 and 23, or " + strconv.Itoa(AnyHour)}
	}
	if r.EndHour != AnyHour && (r.EndHour < 0 || r.EndHour > 23) {
		return &ValidationError{Field: "endHour", Reason: "must be between 0 and 23, or " + strconv.Itoa(AnyHour)}
	}
	if r.MinTemp != AnyTemp && r.MaxTemp != AnyTemp && r.MinTemp > r.MaxTemp {
		return &ValidationError{Field: "minTemp", Reason: "must not exceed maxTemp"}
	}
	if r.SetTemp < MinSetTemp || r.SetTemp > MaxSetTemp {
		return &ValidationError{Field: "setTemp", Reason: "must be between 16 and 30"}
	}
	if !r.FanSpeed.IsValid() {
		return &ValidationError{Field: "fanSpeed", Reason: "invalid fan speed " + strconv.Itoa(int(r.FanSpeed))}
	}
	if !r.Mode.IsValid() {
		return &ValidationError{Field: "mode", Reason: "invalid mode " + strconv.Itoa(int(r.Mode))}
	}
	if !r.VSwing.IsValid() {
		return &ValidationError{Field: "vSwing", Reason: "invalid swing position " + strconv.Itoa(int(r.VSwing))}
	}
	if !r.HSwing.IsValid() {
		return &ValidationError{Field: "hSwing", Reason: "invalid swing position " + strconv.Itoa(int(r.HSwing))}
	}
	return nil
}

var _ slog.LogValuer = Rule{}

func (r Rule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", r.ID),
		slog.String("name", r.Name),
		slog.Bool("enabled", r.Enabled),
	)
}

// Description returns a short human-readable summary of the rule's conditions.
func (r Rule) Description() string {
	text := "any time"
	if r.HasTimeWindow() {
		text = strconv.Itoa(r.StartHour) + ":00-" + strconv.Itoa(r.EndHour) + ":00"
	}
	if r.MinTemp != AnyTemp {
		text += ", ≥" + strconv.FormatFloat(r.MinTemp, 'f', 1, 64) + "º"
	}
	if r.MaxTemp != AnyTemp {
		text += ", ≤" + strconv.FormatFloat(r.MaxTemp, 'f', 1, 64) + "º"
	}
	return text
}
