package engine

import (
	"fmt"
	"sync"
)

// Observer receives game notifications.
// Notify is called synchronously while the triggering operation runs.
type Observer interface {
	Notify(evt Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(evt Event)

// Notify calls f(evt).
func (f ObserverFunc) Notify(evt Event) {
	f(evt)
}

// SubscriptionID identifies a registered observer.
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	observer Observer
}

// Subscribe registers an observer. Observers are notified in
// registration order.
func (g *Game) Subscribe(o Observer) SubscriptionID {
	g.nextSubID++
	g.subs = append(g.subs, subscription{id: g.nextSubID, observer: o})
	return g.nextSubID
}

// Unsubscribe removes an observer. Returns false if id is unknown.
func (g *Game) Unsubscribe(id SubscriptionID) bool {
	for i, s := range g.subs {
		if s.id == id {
			g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
			return true
		}
	}
	return false
}

// emit delivers evt to every observer registered at call time.
func (g *Game) emit(evt Event) {
	subs := g.subs
	for _, s := range subs {
		g.deliver(s, evt)
	}
}

// deliver calls a single observer, containing any panic it raises.
func (g *Game) deliver(s subscription, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("observer panicked",
				"subscription", uint64(s.id),
				"event", string(evt.Kind()),
				"error", fmt.Sprint(r),
			)
		}
	}()
	s.observer.Notify(evt)
}

// ChannelObserver is an Observer that forwards events to a buffered channel
// so a consumer can process them on another goroutine.
type ChannelObserver struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelObserver creates a channel-backed observer.
// bufferSize controls how many events are kept before the oldest is dropped.
func NewChannelObserver(bufferSize int) *ChannelObserver {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelObserver{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Notify enqueues evt without blocking.
// If the buffer is full the oldest event is dropped.
func (c *ChannelObserver) Notify(evt Event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.events <- evt:
	default:
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (c *ChannelObserver) Events() <-chan Event {
	return c.events
}

// Done returns a channel that closes when the observer is closed.
func (c *ChannelObserver) Done() <-chan struct{} {
	return c.done
}

// Close stops accepting events. Safe to call multiple times.
func (c *ChannelObserver) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}
