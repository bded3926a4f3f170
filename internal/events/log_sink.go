package events

import "log"

// LogSink writes effect events to the standard logger
type LogSink struct {
	Prefix string
}

// LogEvent implements the engine's event sink
func (s *LogSink) LogEvent(message string, xpDelta int) {
	if xpDelta != 0 {
		log.Printf("%s%s (+%d XP)", s.Prefix, message, xpDelta)
		return
	}
	log.Printf("%s%s", s.Prefix, message)
}

// HandleEvent implements EventListener
func (s *LogSink) HandleEvent(event Event) error {
	if effect, ok := event.(*EffectEvent); ok {
		s.LogEvent(effect.Message, effect.XPDelta)
	}
	return nil
}

// Priority implements EventListener
func (s *LogSink) Priority() int { return PriorityNotify }

// ID implements EventListener
func (s *LogSink) ID() string { return "log" }
