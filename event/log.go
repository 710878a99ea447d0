package event

// Log is an append-only sequence of typed events.
type Log struct {
	events []Event
}

// Append records a new event.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
}

// All returns every event recorded so far, in order.
func (l *Log) All() []Event {
	return l.events
}

// Lines renders every event to its textual form, for CLI display.
func (l *Log) Lines() []string {
	lines := make([]string, len(l.events))
	for i, e := range l.events {
		lines[i] = e.String()
	}
	return lines
}

// Reset clears the log. Used on program reload, per spec.md §3
// ("Instruction created at parse ... destroyed on program reload").
// A flush does NOT clear the log — flush events themselves are logged.
func (l *Log) Reset() {
	l.events = nil
}
