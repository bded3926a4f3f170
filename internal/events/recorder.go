package events

import "sync"

// Recorder keeps every effect event it sees. It works both as a direct event
// sink and as a bus listener.
type Recorder struct {
	mu     sync.Mutex
	events []*EffectEvent
	id     string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{id: "recorder"}
}

// LogEvent records a notification
func (r *Recorder) LogEvent(message string, xpDelta int) {
	r.record(NewEffectEvent(message, xpDelta))
}

// HandleEvent implements EventListener
func (r *Recorder) HandleEvent(event Event) error {
	if effect, ok := event.(*EffectEvent); ok {
		r.record(effect)
	}
	return nil
}

// Priority implements EventListener
func (r *Recorder) Priority() int { return PriorityRecord }

// ID implements EventListener
func (r *Recorder) ID() string { return r.id }

func (r *Recorder) record(event *EffectEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order
func (r *Recorder) Events() []*EffectEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*EffectEvent(nil), r.events...)
}

// Messages returns the recorded messages in arrival order
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Message)
	}
	return out
}

// TotalXP sums the XP of every recorded event
func (r *Recorder) TotalXP() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, e := range r.events {
		total += e.XPDelta
	}
	return total
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
