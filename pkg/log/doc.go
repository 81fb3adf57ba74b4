// Package log provides structured packet tracing for the LIFX LAN
// protocol.
//
// The package defines the Logger interface and the Event type used to
// capture every packet a transport sends or receives, including ones
// that failed to decode. It is separate from operational logging:
// a packet trace is a machine-readable record of what actually crossed
// the network, useful for debugging devices that misbehave.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: trace to console via slog
//	cfg.PacketLogger = log.NewSlogAdapter(slog.Default())
//
//	// Fan out to several sinks
//	cfg.PacketLogger = log.NewMultiLogger(a, b)
//
// Pass nil or NoopLogger to disable tracing.
//
// # Trace Files
//
// FileLogger records events to a file as a CBOR stream; Reader plays a
// recording back, optionally filtered:
//
//	logger, err := log.NewFileLogger("packets.trace")
//	...
//	reader, err := log.NewFilteredReader("packets.trace", log.Filter{FailedOnly: true})
package log
