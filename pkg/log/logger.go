package log

// Logger receives one Event per packet a transport sends or receives.
// Implementations must be safe for concurrent use and should return
// quickly; the transport read loop calls Log inline.
type Logger interface {
	Log(event Event)
}

// NoopLogger discards all events. The transport falls back to it when
// no logger is configured; the zero value is usable.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
