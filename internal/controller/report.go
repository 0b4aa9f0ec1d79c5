package controller

import (
	"log/slog"
	"time"

	"github.com/acpilot/acpilot/internal/rules"
)

// NoRule is the rule ID reported when no rule matched.
const NoRule = -1

// Action is the outcome of a control cycle.
type Action string

const (
	// ActionSkipped: no valid temperature reading, or the rules could not be read in time.
	ActionSkipped Action = "skipped"
	// ActionUnchanged: the AC already runs the target configuration.
	ActionUnchanged Action = "unchanged"
	// ActionApplied: the target configuration was transmitted.
	ActionApplied Action = "applied"
	// ActionFailed: transmitting the target configuration failed. The next cycle tries again.
	ActionFailed Action = "failed"
)

// Report describes one control cycle. The Controller publishes a Report after every cycle.
// A skipped cycle reports the rule that was active before it.
type Report struct {
	Time        time.Time      `json:"time"`
	Hour        int            `json:"hour"`
	Temperature float64        `json:"temperature"`
	RuleID      int            `json:"ruleId"`
	RuleName    string         `json:"ruleName,omitempty"`
	Action      Action         `json:"action"`
	Target      rules.ACConfig `json:"target"`
	Changes     []string       `json:"changes,omitempty"`
	Forced      bool           `json:"forced,omitempty"`
	Reason      string         `json:"reason,omitempty"`
}

// Matched returns true if a rule was active during the cycle.
func (r Report) Matched() bool {
	return r.RuleID != NoRule
}

// Transmitted returns true if the cycle tried to send a configuration to the AC.
func (r Report) Transmitted() bool {
	return r.Action == ActionApplied || r.Action == ActionFailed
}

var _ slog.LogValuer = Report{}

func (r Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("action", string(r.Action)),
		slog.Int("hour", r.Hour),
	}
	if r.Action != ActionSkipped {
		attrs = append(attrs, slog.Float64("temperature", r.Temperature))
	}
	if r.Matched() {
		attrs = append(attrs, slog.Int("rule", r.RuleID), slog.String("name", r.RuleName))
	}
	if r.Transmitted() {
		attrs = append(attrs, slog.Any("target", r.Target))
	}
	if r.Reason != "" {
		attrs = append(attrs, slog.String("reason", r.Reason))
	}
	return slog.GroupValue(attrs...)
}
