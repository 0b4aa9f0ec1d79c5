package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/acpilot/acpilot/internal/mqttclient"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// DefaultMaxAge is how long an MQTT reading stays valid when no newer reading arrives.
const DefaultMaxAge = 5 * time.Minute

var _ Sensor = &MQTTSensor{}

// MQTTSensor keeps the last temperature published on an MQTT topic.
//
// Payloads are either a plain number ("27.5") or a JSON object with a "temperature" field.
type MQTTSensor struct {
	client     mqttclient.Subscriber
	topic      string
	maxAge     time.Duration
	logger     *slog.Logger
	now        func() time.Time
	lock       sync.RWMutex
	value      float64
	receivedAt time.Time
}

func NewMQTTSensor(client mqttclient.Subscriber, topic string, maxAge time.Duration, logger *slog.Logger) *MQTTSensor {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &MQTTSensor{
		client: client,
		topic:  topic,
		maxAge: maxAge,
		logger: logger,
		now:    time.Now,
	}
}

// Run subscribes to the topic and records readings until the context is canceled.
func (s *MQTTSensor) Run(ctx context.Context) error {
	if err := mqttclient.Wait(s.client.Subscribe(s.topic, 0, s.onMessage), mqttclient.DefaultTimeout); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.topic, err)
	}
	s.logger.Debug("subscribed", "topic", s.topic)
	<-ctx.Done()
	_ = mqttclient.Wait(s.client.Unsubscribe(s.topic), mqttclient.DefaultTimeout)
	return nil
}

func (s *MQTTSensor) onMessage(_ mqtt.Client, msg mqtt.Message) {
	temperature, err := parseTemperature(msg.Payload())
	if err == nil {
		err = checkRange(temperature)
	}
	if err != nil {
		s.logger.Warn("ignoring invalid temperature reading", "topic", msg.Topic(), "err", err)
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.value = temperature
	s.receivedAt = s.now()
}

func (s *MQTTSensor) ReadTemperature(_ context.Context) (float64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.receivedAt.IsZero() {
		return 0, ErrNoReading
	}
	if age := s.now().Sub(s.receivedAt); age > s.maxAge {
		return 0, fmt.Errorf("%w: last reading %s ago", ErrStaleReading, age.Round(time.Second))
	}
	return s.value, nil
}

func parseTemperature(payload []byte) (float64, error) {
	text := strings.TrimSpace(string(payload))
	if strings.HasPrefix(text, "{") {
		var reading struct {
			Temperature *float64 `json:"temperature"`
		}
		if err := json.Unmarshal(payload, &reading); err != nil {
			return 0, fmt.Errorf("decode: %w", err)
		}
		if reading.Temperature == nil {
			return 0, fmt.Errorf("decode: missing temperature")
		}
		return *reading.Temperature, nil
	}
	return strconv.ParseFloat(text, 64)
}
