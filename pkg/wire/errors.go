package wire

import "errors"

// Codec errors. All decode failures wrap one of these sentinels so
// callers can classify them with errors.Is.
var (
	// ErrTruncated indicates the input ended before a complete packet
	// or value could be read.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingBytes indicates the buffer extends past the size
	// declared in the frame header.
	ErrTrailingBytes = errors.New("trailing bytes after packet")

	// ErrInvalidProtocol indicates a frame whose protocol field is not
	// ProtocolNumber.
	ErrInvalidProtocol = errors.New("invalid protocol number")

	// ErrUnknownType indicates a message type code outside the
	// supported set. Devices emit undocumented types in normal
	// operation, so receivers should treat this as skippable.
	ErrUnknownType = errors.New("unknown message type")

	// ErrMalformedPayload indicates a payload whose length does not
	// match the message type named in the protocol header.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrPayloadTooLarge indicates a payload that would push the total
	// packet size past MaxPacketSize.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidZoneCount indicates a zone color list longer than
	// MaxZones.
	ErrInvalidZoneCount = errors.New("invalid zone count")
)
