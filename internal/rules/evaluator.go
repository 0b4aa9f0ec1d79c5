package rules

import (
	"log/slog"
	"math"
)

// EvaluationContext holds the inputs for one evaluation cycle.
type EvaluationContext struct {
	Hour        int
	Temperature float64
}

// IsValid returns false if the temperature reading is invalid.
func (c EvaluationContext) IsValid() bool {
	return !math.IsNaN(c.Temperature) && !math.IsInf(c.Temperature, 0)
}

func (c EvaluationContext) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("hour", c.Hour),
		slog.Float64("temperature", c.Temperature),
	)
}

// SelectActiveRule returns the first enabled rule, in list order, whose time and temperature conditions both hold.
// Later rules are never considered once a rule matches, even if they are more specific.
func SelectActiveRule(ctx EvaluationContext, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(ctx) {
			return r, true
		}
	}
	return Rule{}, false
}
