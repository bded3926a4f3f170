package events

import (
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus fans play-time events out to listeners. Lower priorities run first and
// a cancelled event stops propagating. A Bus is itself an engine event sink.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{listeners: make(map[EventType][]EventListener)}
}

func byPriority(a, b EventListener) int {
	return a.Priority() - b.Priority()
}

// Subscribe registers listener for one event type. Listeners of equal
// priority keep subscription order.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.listeners[eventType], listener)
	slices.SortStableFunc(list, byPriority)
	b.listeners[eventType] = list
}

// SubscribeEffects registers listener for everything LogEvent can emit
func (b *Bus) SubscribeEffects(listener EventListener) {
	for _, eventType := range EffectEventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes the listener with the given id from one event type
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})
}

// Clear drops every listener
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.listeners)
}

// Emit delivers event in priority order. The first listener error aborts
// delivery and is returned.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			return nil
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}
	return nil
}

// LogEvent implements the engine event sink. Effects cannot act on listener
// failures, so they are only logged.
func (b *Bus) LogEvent(message string, xpDelta int) {
	if err := b.Emit(NewEffectEvent(message, xpDelta)); err != nil {
		log.Printf("EventBus: dropped %q: %v", message, err)
	}
}
