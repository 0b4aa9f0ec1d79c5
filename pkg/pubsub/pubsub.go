// Package pubsub provides a basic Publish/Subscribe implementation.
package pubsub

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the number of updates a subscriber's channel can hold before Publish drops updates for it.
const DefaultBufferSize = 8

// Publisher allows clients to subscribe and sends them the information provided by Publish.
// Publish never blocks: if a subscriber's channel is full, the update is dropped for that subscriber.
type Publisher[T any] struct {
	clients    map[chan T]struct{}
	logger     *slog.Logger
	bufferSize int
	lock       sync.RWMutex
}

// New returns a new Publisher
func New[T any](logger *slog.Logger) *Publisher[T] {
	return &Publisher[T]{
		clients:    make(map[chan T]struct{}),
		logger:     logger,
		bufferSize: DefaultBufferSize,
	}
}

// Subscribe registers the caller and returns a new channel on which it will publish updates.
func (p *Publisher[T]) Subscribe() chan T {
	p.lock.Lock()
	defer p.lock.Unlock()
	ch := make(chan T, p.bufferSize)
	p.clients[ch] = struct{}{}
	p.logger.Debug("subscriber added", slog.Int("subscribers", len(p.clients)))
	return ch
}

// Unsubscribe removes the registered client/channel.
func (p *Publisher[T]) Unsubscribe(ch chan T) {
	p.lock.Lock()
	defer p.lock.Unlock()
	delete(p.clients, ch)
	p.logger.Debug("subscriber removed", slog.Int("subscribers", len(p.clients)))
}

// Publish sends info to all registered clients. It returns the number of clients that received the update.
func (p *Publisher[T]) Publish(info T) int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	var sent int
	for ch := range p.clients {
		select {
		case ch <- info:
			sent++
		default:
			p.logger.Warn("subscriber not keeping up. update dropped")
		}
	}
	return sent
}

// Subscribers returns the current number of subscribers
func (p *Publisher[T]) Subscribers() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.clients)
}
