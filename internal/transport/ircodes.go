package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/acpilot/acpilot/internal/mqttclient"
	"github.com/acpilot/acpilot/internal/rules"
	"gopkg.in/yaml.v3"
)

// A Button is a key on the AC's remote control.
type Button string

const (
	PowerOn  Button = "powerOn"
	PowerOff Button = "powerOff"
	TempUp   Button = "tempUp"
	TempDown Button = "tempDown"
	FanAuto  Button = "fanAuto"
	FanLow   Button = "fanLow"
	FanMed   Button = "fanMed"
	FanHigh  Button = "fanHigh"
	ModeCool Button = "modeCool"
	ModeHeat Button = "modeHeat"
	ModeDry  Button = "modeDry"
	ModeFan  Button = "modeFan"
	ModeAuto Button = "modeAuto"
	SwingOn  Button = "swingOn"
	SwingOff Button = "swingOff"
)

var (
	fanButtons  = map[rules.FanSpeed]Button{rules.FanAuto: FanAuto, rules.FanLow: FanLow, rules.FanMedium: FanMed, rules.FanHigh: FanHigh}
	modeButtons = map[rules.Mode]Button{rules.ModeCool: ModeCool, rules.ModeHeat: ModeHeat, rules.ModeDry: ModeDry, rules.ModeFan: ModeFan, rules.ModeAuto: ModeAuto}
)

var ErrNotReady = errors.New("ir codes: learned code table is incomplete")

// Codes maps each learned button to the code the IR blaster replays.
type Codes map[Button]string

// LoadCodes reads a YAML code table.
func LoadCodes(r io.Reader) (Codes, error) {
	var codes Codes
	if err := yaml.NewDecoder(r).Decode(&codes); err != nil {
		return nil, fmt.Errorf("ir codes: %w", err)
	}
	return codes, nil
}

// LoadCodesFile reads a YAML code table from a file.
func LoadCodesFile(path string) (Codes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ir codes: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadCodes(f)
}

func (c Codes) has(b Button) bool {
	return c[b] != ""
}

// Ready reports whether the table holds enough codes to control the AC: both power codes, both temperature codes
// and at least one fan code.
func (c Codes) Ready() bool {
	for _, b := range []Button{PowerOn, PowerOff, TempUp, TempDown} {
		if !c.has(b) {
			return false
		}
	}
	for _, b := range fanButtons {
		if c.has(b) {
			return true
		}
	}
	return false
}

var _ Transport = &IRTransport{}

// IRTransport replays learned remote control codes through an IR blaster listening on an MQTT topic.
//
// Remote controls only send relative commands for the temperature, so IRTransport tracks the state it believes the
// AC is in and sends the buttons needed to move from that state to the target.
type IRTransport struct {
	client  mqttclient.Publisher
	topic   string
	codes   Codes
	gap     time.Duration
	logger  *slog.Logger
	lock    sync.Mutex
	assumed rules.ACConfig
	target  rules.ACConfig
	pending []Button
}

func NewIRTransport(client mqttclient.Publisher, topic string, codes Codes, gap time.Duration, logger *slog.Logger) *IRTransport {
	return &IRTransport{
		client:  client,
		topic:   topic,
		codes:   codes,
		gap:     gap,
		logger:  logger,
		assumed: rules.OffConfig,
	}
}

func (t *IRTransport) Configure(cfg rules.ACConfig) error {
	if !t.codes.Ready() {
		return ErrNotReady
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	t.target = cfg
	t.pending = t.sequence(t.assumed, cfg)
	return nil
}

func (t *IRTransport) sequence(from, to rules.ACConfig) []Button {
	if !to.Power {
		return []Button{PowerOff}
	}
	var buttons []Button
	if !from.Power {
		buttons = append(buttons, PowerOn)
	}
	if b := modeButtons[to.Mode]; (!from.Power || from.Mode != to.Mode) && t.codes.has(b) {
		buttons = append(buttons, b)
	}
	if b := fanButtons[to.FanSpeed]; (!from.Power || from.FanSpeed != to.FanSpeed) && t.codes.has(b) {
		buttons = append(buttons, b)
	}
	for range max(to.Temperature-from.Temperature, 0) {
		buttons = append(buttons, TempUp)
	}
	for range max(from.Temperature-to.Temperature, 0) {
		buttons = append(buttons, TempDown)
	}
	swingWanted, swingWas := swingButton(to), swingButton(from)
	if (!from.Power || swingWanted != swingWas) && t.codes.has(swingWanted) {
		buttons = append(buttons, swingWanted)
	}
	if len(buttons) == 0 {
		// nothing changed, but a transmission was requested: resend power on
		buttons = append(buttons, PowerOn)
	}
	return buttons
}

func swingButton(cfg rules.ACConfig) Button {
	if cfg.VSwing == rules.SwingAuto || cfg.HSwing == rules.SwingAuto {
		return SwingOn
	}
	return SwingOff
}

func (t *IRTransport) Transmit(ctx context.Context) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.pending == nil {
		return ErrNotConfigured
	}
	sent := t.pending
	for len(t.pending) > 0 {
		if len(t.pending) < len(sent) {
			if err := sleep(ctx, t.gap); err != nil {
				return err
			}
		}
		b := t.pending[0]
		if err := mqttclient.Wait(t.client.Publish(t.topic, 1, false, t.codes[b]), mqttclient.DefaultTimeout); err != nil {
			// assumed holds the presses sent so far: the next sequence continues from there
			return fmt.Errorf("ir codes: send %s: %w", b, err)
		}
		t.assumed = t.press(t.assumed, b)
		t.pending = t.pending[1:]
	}
	t.logger.Debug("ir sequence sent", "buttons", sent, "config", t.target)
	t.pending = nil
	return nil
}

// press returns the state of the AC after button b is pressed.
func (t *IRTransport) press(state rules.ACConfig, b Button) rules.ACConfig {
	switch b {
	case PowerOn:
		state.Power = true
	case PowerOff:
		state.Power = false
	case TempUp:
		state.Temperature++
	case TempDown:
		state.Temperature--
	case SwingOn, SwingOff:
		state.VSwing, state.HSwing = t.target.VSwing, t.target.HSwing
	default:
		for fan, button := range fanButtons {
			if button == b {
				state.FanSpeed = fan
			}
		}
		for mode, button := range modeButtons {
			if button == b {
				state.Mode = mode
			}
		}
	}
	return state
}
