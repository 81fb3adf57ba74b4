package log

// MultiLogger fans each event out to several sinks in order, such as a
// console bridge plus a trace file.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger combines the given sinks into one Logger. Nil sinks
// are dropped; with zero sinks left the result is a NoopLogger, with
// one it is that sink itself.
func NewMultiLogger(sinks ...Logger) Logger {
	kept := make([]Logger, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	switch len(kept) {
	case 0:
		return NoopLogger{}
	case 1:
		return kept[0]
	default:
		return &MultiLogger{sinks: kept}
	}
}

// Log sends the event to every sink.
func (m *MultiLogger) Log(event Event) {
	for _, s := range m.sinks {
		s.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
