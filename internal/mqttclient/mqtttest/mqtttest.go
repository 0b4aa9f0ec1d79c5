// Package mqtttest provides an in-memory broker for testing MQTT publishers and subscribers.
package mqtttest

import (
	"fmt"
	"sync"
	"time"

	"github.com/acpilot/acpilot/internal/mqttclient"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var (
	_ mqttclient.Publisher  = &Client{}
	_ mqttclient.Subscriber = &Client{}
	_ mqtt.Token            = &Token{}
	_ mqtt.Message          = &Message{}
)

// Client records published messages and delivers them synchronously to matching subscribers.
type Client struct {
	// PublishErr, if set, fails every Publish call.
	PublishErr error
	messages   []Message
	handlers   map[string]mqtt.MessageHandler
	failAfter  int
	failErr    error
	lock       sync.Mutex
}

func NewClient() *Client {
	return &Client{handlers: make(map[string]mqtt.MessageHandler)}
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.lock.Lock()
	if c.PublishErr != nil {
		c.lock.Unlock()
		return NewToken(c.PublishErr)
	}
	if c.failErr != nil {
		if c.failAfter == 0 {
			err := c.failErr
			c.failErr = nil
			c.lock.Unlock()
			return NewToken(err)
		}
		c.failAfter--
	}
	msg := Message{topic: topic, qos: qos, retained: retained, payload: toBytes(payload)}
	c.messages = append(c.messages, msg)
	handler := c.handlers[topic]
	c.lock.Unlock()

	if handler != nil {
		handler(nil, &msg)
	}
	return NewToken(nil)
}

// FailAfter lets the next n calls to Publish succeed. The call after that fails with err.
func (c *Client) FailAfter(n int, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.failAfter = n
	c.failErr = err
}

func (c *Client) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.handlers[topic] = callback
	return NewToken(nil)
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, topic := range topics {
		delete(c.handlers, topic)
	}
	return NewToken(nil)
}

// DropSubscriptions forgets all subscriptions, as a broker does when a client reconnects with a clean session.
func (c *Client) DropSubscriptions() {
	c.lock.Lock()
	defer c.lock.Unlock()
	clear(c.handlers)
}

// Deliver sends a message to the subscriber of the topic, as if it was published by another client.
func (c *Client) Deliver(topic string, payload interface{}) {
	c.lock.Lock()
	handler := c.handlers[topic]
	c.lock.Unlock()
	if handler != nil {
		handler(nil, &Message{topic: topic, payload: toBytes(payload)})
	}
}

// Subscribed reports whether a handler is registered for the topic.
func (c *Client) Subscribed(topic string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.handlers[topic]
	return ok
}

// Messages returns all published messages.
func (c *Client) Messages() []Message {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]Message(nil), c.messages...)
}

// Payloads returns the payloads published on a topic, in order.
func (c *Client) Payloads(topic string) []string {
	c.lock.Lock()
	defer c.lock.Unlock()
	var payloads []string
	for _, msg := range c.messages {
		if msg.topic == topic {
			payloads = append(payloads, string(msg.payload))
		}
	}
	return payloads
}

func toBytes(payload interface{}) []byte {
	switch p := payload.(type) {
	case []byte:
		return p
	case string:
		return []byte(p)
	default:
		return []byte(fmt.Sprint(p))
	}
}

// Message is an mqtt.Message held in memory.
type Message struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

func (m *Message) Duplicate() bool   { return false }
func (m *Message) Qos() byte         { return m.qos }
func (m *Message) Retained() bool    { return m.retained }
func (m *Message) Topic() string     { return m.topic }
func (m *Message) MessageID() uint16 { return 0 }
func (m *Message) Payload() []byte   { return m.payload }
func (m *Message) Ack()              {}

// Token is an mqtt.Token that is either completed or never completes.
type Token struct {
	done chan struct{}
	err  error
}

// NewToken returns a completed token.
func NewToken(err error) *Token {
	t := Token{done: make(chan struct{}), err: err}
	close(t.done)
	return &t
}

// PendingToken returns a token that never completes.
func PendingToken() *Token {
	return &Token{done: make(chan struct{})}
}

func (t *Token) Wait() bool {
	<-t.done
	return true
}

func (t *Token) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *Token) Done() <-chan struct{} { return t.done }

func (t *Token) Error() error { return t.err }
