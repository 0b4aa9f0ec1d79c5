package rules

import (
	"log/slog"
	"strconv"
)

const (
	MinSetTemp = 16
	MaxSetTemp = 30
)

// FanSpeed is the AC fan level.
type FanSpeed int

const (
	FanAuto FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

var fanSpeedNames = []string{"auto", "low", "medium", "high"}

func (f FanSpeed) IsValid() bool {
	return f >= FanAuto && f <= FanHigh
}

func (f FanSpeed) String() string {
	if !f.IsValid() {
		return "fan(" + strconv.Itoa(int(f)) + ")"
	}
	return fanSpeedNames[f]
}

// Mode is the AC operating mode.
type Mode int

const (
	ModeCool Mode = iota
	ModeHeat
	ModeDry
	ModeFan
	ModeAuto
)

var modeNames = []string{"cool", "heat", "dry", "fan", "auto"}

func (m Mode) IsValid() bool {
	return m >= ModeCool && m <= ModeAuto
}

func (m Mode) String() string {
	if !m.IsValid() {
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// Swing is a louvre position. For vertical swing, SwingLow means top & SwingHigh means bottom. For horizontal swing,
// SwingLow is left & SwingHigh is right.
type Swing int

const (
	SwingAuto Swing = iota
	SwingLow
	SwingMiddle
	SwingHigh
)

var swingNames = []string{"auto", "low", "middle", "high"}

func (s Swing) IsValid() bool {
	return s >= SwingAuto && s <= SwingHigh
}

func (s Swing) String() string {
	if !s.IsValid() {
		return "swing(" + strconv.Itoa(int(s)) + ")"
	}
	return swingNames[s]
}

// ACConfig is the full set of settings sent to the AC unit. Two configurations are equal if all fields are equal.
type ACConfig struct {
	Temperature int      `json:"temperature"`
	FanSpeed    FanSpeed `json:"fanSpeed"`
	Mode        Mode     `json:"mode"`
	VSwing      Swing    `json:"vSwing"`
	HSwing      Swing    `json:"hSwing"`
	Power       bool     `json:"power"`
}

// OffConfig is the configuration assumed at boot, and applied when no rule matches.
var OffConfig = ACConfig{
	Power:       false,
	Temperature: 24,
	FanSpeed:    FanAuto,
	Mode:        ModeCool,
	VSwing:      SwingAuto,
	HSwing:      SwingAuto,
}

var _ slog.LogValuer = ACConfig{}

func (c ACConfig) LogValue() slog.Value {
	if !c.Power {
		return slog.GroupValue(slog.Bool("power", false))
	}
	return slog.GroupValue(
		slog.Bool("power", true),
		slog.Int("temperature", c.Temperature),
		slog.String("fan", c.FanSpeed.String()),
		slog.String("mode", c.Mode.String()),
		slog.String("vSwing", c.VSwing.String()),
		slog.String("hSwing", c.HSwing.String()),
	)
}

func (c ACConfig) String() string {
	if !c.Power {
		return "off"
	}
	return c.Mode.String() + " to " + strconv.Itoa(c.Temperature) + "º, fan " + c.FanSpeed.String()
}
