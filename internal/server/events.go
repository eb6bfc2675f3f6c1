package server

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// subscriberBuffer is how many events a slow subscriber may lag behind.
const subscriberBuffer = 16

// EventBroker fans accepted photo uploads out to every connected editing
// store. It implements photo.Dispatcher.
type EventBroker struct {
	mu     sync.Mutex
	subs   map[chan types.ProfilePictureUpdated]struct{}
	closed bool
	logger *zap.Logger
}

// NewEventBroker creates an empty broker.
func NewEventBroker(log *zap.Logger) *EventBroker {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventBroker{
		subs:   make(map[chan types.ProfilePictureUpdated]struct{}),
		logger: log,
	}
}

// Subscribe registers a listener. The returned cancel func must be called
// to release it; the channel is closed afterwards, or when the broker is
// closed. Subscribing to a closed broker yields a closed channel.
func (b *EventBroker) Subscribe() (<-chan types.ProfilePictureUpdated, func()) {
	ch := make(chan types.ProfilePictureUpdated, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
}

// Close ends every subscription so streaming handlers return. It is safe
// to call more than once.
func (b *EventBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// Subscribers returns the number of connected listeners.
func (b *EventBroker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dispatch delivers event to every subscriber without blocking. A
// subscriber whose buffer is full misses the event.
func (b *EventBroker) Dispatch(_ context.Context, event types.ProfilePictureUpdated) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for ch := range b.subs {
		select {
		case ch <- event:
			delivered++
		default:
			b.logger.Warn("dropping event for slow subscriber", zap.String("event_id", event.ID.String()))
		}
	}

	b.logger.Info("profile picture updated",
		zap.String("event_id", event.ID.String()),
		zap.String("mime_type", event.MimeType),
		zap.Int64("size_bytes", event.SizeBytes),
		logger.DataURI("value", event.Value),
		zap.Int("delivered", delivered),
	)
	return nil
}
