package events

// EventType represents the type of play-time event
type EventType string

// Event is the base interface for all play-time events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// EffectEvent is a notification produced by an item effect
type EffectEvent struct {
	BaseEvent
	Message string
	XPDelta int
}

// NewEffectEvent types the notification by whether it awards XP
func NewEffectEvent(message string, xpDelta int) *EffectEvent {
	eventType := EventTypeEffect
	if xpDelta != 0 {
		eventType = EventTypeXPAwarded
	}
	return &EffectEvent{
		BaseEvent: BaseEvent{Type: eventType},
		Message:   message,
		XPDelta:   xpDelta,
	}
}
