package events

// Event type constants
const (
	EventTypeEffect    EventType = "effect"
	EventTypeXPAwarded EventType = "xp_awarded"
)

// EffectEventTypes lists every type LogEvent can emit
var EffectEventTypes = []EventType{EventTypeEffect, EventTypeXPAwarded}

// Priority levels for listener order
const (
	PriorityRecord = 0   // Keep a copy before anything can cancel
	PriorityScore  = 100 // XP and quest bookkeeping
	PriorityNotify = 200 // User-facing output
)
