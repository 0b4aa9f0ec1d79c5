package store

import "github.com/acpilot/acpilot/internal/rules"

// A Patch holds the rule fields to change. Nil fields are left untouched.
type Patch struct {
	Name      *string         `json:"name,omitempty"`
	Enabled   *bool           `json:"enabled,omitempty"`
	StartHour *int            `json:"startHour,omitempty"`
	EndHour   *int            `json:"endHour,omitempty"`
	MinTemp   *float64        `json:"minTemp,omitempty"`
	MaxTemp   *float64        `json:"maxTemp,omitempty"`
	ACOn      *bool           `json:"acOn,omitempty"`
	SetTemp   *float64        `json:"setTemp,omitempty"`
	FanSpeed  *rules.FanSpeed `json:"fanSpeed,omitempty"`
	Mode      *rules.Mode     `json:"mode,omitempty"`
	VSwing    *rules.Swing    `json:"vSwing,omitempty"`
	HSwing    *rules.Swing    `json:"hSwing,omitempty"`
}

// Apply returns r with all supplied fields of the Patch applied.
func (p Patch) Apply(r rules.Rule) rules.Rule {
	apply(&r.Name, p.Name)
	apply(&r.Enabled, p.Enabled)
	apply(&r.StartHour, p.StartHour)
	apply(&r.EndHour, p.EndHour)
	apply(&r.MinTemp, p.MinTemp)
	apply(&r.MaxTemp, p.MaxTemp)
	apply(&r.ACOn, p.ACOn)
	apply(&r.SetTemp, p.SetTemp)
	apply(&r.FanSpeed, p.FanSpeed)
	apply(&r.Mode, p.Mode)
	apply(&r.VSwing, p.VSwing)
	apply(&r.HSwing, p.HSwing)
	return r
}

// IsEmpty returns true if the Patch doesn't change anything.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

func apply[T any](field *T, value *T) {
	if value != nil {
		*field = *value
	}
}

// VarP returns a pointer to v. Used to build Patches.
func VarP[T any](v T) *T {
	return &v
}
