package log

import "time"

// MaxDataSize bounds the packet bytes carried in an Event. Packets
// larger than this are truncated and flagged.
const MaxDataSize = 128

// Event represents one packet crossing the transport, in either
// direction. Undecodable packets still produce an event with Err set,
// so a trace shows exactly what was on the wire.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the packet was sent or received (nanosecond
	// precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Direction indicates packet flow.
	Direction Direction `cbor:"2,keyasint"`

	// RemoteAddr is the peer address (IP:port). For broadcasts this is
	// the broadcast address.
	RemoteAddr string `cbor:"3,keyasint,omitempty"`

	// Target is the printable form of the frame address target, when
	// the headers decoded.
	Target string `cbor:"4,keyasint,omitempty"`

	// Type is the message type code, when the headers decoded.
	Type uint16 `cbor:"5,keyasint,omitempty"`

	// Sequence is the frame address sequence number, when the headers
	// decoded.
	Sequence uint8 `cbor:"6,keyasint,omitempty"`

	// Size is the full packet size in bytes.
	Size int `cbor:"7,keyasint"`

	// Data holds the packet bytes, truncated to MaxDataSize.
	Data []byte `cbor:"8,keyasint,omitempty"`

	// Truncated indicates Data does not hold the whole packet.
	Truncated bool `cbor:"9,keyasint,omitempty"`

	// Err is the decode failure message for packets that could not be
	// parsed. Empty for packets that decoded cleanly.
	Err string `cbor:"10,keyasint,omitempty"`
}

// Capture copies up to MaxDataSize bytes of a packet into the event
// and records its true size.
func (e *Event) Capture(packet []byte) {
	e.Size = len(packet)
	n := len(packet)
	if n > MaxDataSize {
		n = MaxDataSize
		e.Truncated = true
	}
	e.Data = append([]byte(nil), packet[:n]...)
}

// Direction indicates the direction of packet flow.
type Direction uint8

const (
	// DirectionIn indicates a received packet.
	DirectionIn Direction = 0
	// DirectionOut indicates a sent packet.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}
