package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/acpilot/acpilot/internal/mqttclient"
	"github.com/acpilot/acpilot/internal/rules"
)

var _ Transport = &StateTransport{}

// StateTransport publishes the full AC state as a single JSON command, for units (or bridges) that accept absolute
// state over MQTT.
type StateTransport struct {
	Client   mqttclient.Publisher
	Topic    string
	Retained bool
	lock     sync.Mutex
	payload  []byte
}

type stateCommand struct {
	Power       string `json:"power"`
	Mode        string `json:"mode"`
	Temperature int    `json:"temperature"`
	Fan         string `json:"fan"`
	VSwing      string `json:"vSwing"`
	HSwing      string `json:"hSwing"`
}

func (s *StateTransport) Configure(cfg rules.ACConfig) error {
	power := "off"
	if cfg.Power {
		power = "on"
	}
	payload, err := json.Marshal(stateCommand{
		Power:       power,
		Mode:        cfg.Mode.String(),
		Temperature: cfg.Temperature,
		Fan:         cfg.FanSpeed.String(),
		VSwing:      cfg.VSwing.String(),
		HSwing:      cfg.HSwing.String(),
	})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.payload = payload
	return nil
}

func (s *StateTransport) Transmit(_ context.Context) error {
	s.lock.Lock()
	payload := s.payload
	s.lock.Unlock()
	if payload == nil {
		return ErrNotConfigured
	}
	if err := mqttclient.Wait(s.Client.Publish(s.Topic, 1, s.Retained, payload), mqttclient.DefaultTimeout); err != nil {
		return fmt.Errorf("publish %s: %w", s.Topic, err)
	}
	return nil
}
