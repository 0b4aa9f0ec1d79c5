// Package mqttclient connects to the MQTT broker shared by the sensor, the transports and the telemetry notifier.
package mqttclient

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// DefaultTimeout bounds how long Publish and Subscribe wait for the broker to acknowledge.
const DefaultTimeout = 5 * time.Second

// ErrTimeout is returned when the broker did not acknowledge a request in time.
var ErrTimeout = errors.New("mqtt: timeout")

// Publisher is the subset of mqtt.Client used to send messages.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Subscriber is the subset of mqtt.Client used to receive messages.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Unsubscribe(topics ...string) mqtt.Token
}

// Conn is the part of mqtt.Client that Client wraps.
type Conn interface {
	Publisher
	Subscriber
}

// Client keeps track of its subscriptions, so they can be restored when the broker forgets them after a reconnect.
type Client struct {
	conn          Conn
	logger        *slog.Logger
	lock          sync.Mutex
	subscriptions map[string]subscription
}

type subscription struct {
	qos      byte
	callback mqtt.MessageHandler
}

var _ Conn = &Client{}

// New wraps an existing connection.
func New(conn Conn, logger *slog.Logger) *Client {
	return &Client{
		conn:          conn,
		logger:        logger,
		subscriptions: make(map[string]subscription),
	}
}

// Connect creates a client for the broker and connects to it. Subscriptions are restored on every reconnect.
func Connect(broker, clientID string, logger *slog.Logger) (*Client, error) {
	c := New(nil, logger)
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("mqtt connection lost", "err", err)
		}).
		SetOnConnectHandler(func(_ mqtt.Client) {
			logger.Debug("mqtt connected", "broker", broker)
			c.Resubscribe()
		})
	conn := mqtt.NewClient(opts)
	c.conn = conn
	if token := conn.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return c, nil
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	return c.conn.Publish(topic, qos, retained, payload)
}

func (c *Client) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.lock.Lock()
	c.subscriptions[topic] = subscription{qos: qos, callback: callback}
	c.lock.Unlock()
	return c.conn.Subscribe(topic, qos, callback)
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	c.lock.Lock()
	for _, topic := range topics {
		delete(c.subscriptions, topic)
	}
	c.lock.Unlock()
	return c.conn.Unsubscribe(topics...)
}

// Resubscribe subscribes again to all topics the client is subscribed to.
func (c *Client) Resubscribe() {
	c.lock.Lock()
	subscriptions := maps.Clone(c.subscriptions)
	c.lock.Unlock()

	for topic, sub := range subscriptions {
		if err := Wait(c.conn.Subscribe(topic, sub.qos, sub.callback), DefaultTimeout); err != nil {
			c.logger.Warn("failed to restore subscription", "topic", topic, "err", err)
			continue
		}
		c.logger.Debug("subscription restored", "topic", topic)
	}
}

// Wait waits for the token to complete and returns its error.
func Wait(token mqtt.Token, timeout time.Duration) error {
	if !token.WaitTimeout(timeout) {
		return ErrTimeout
	}
	return token.Error()
}
