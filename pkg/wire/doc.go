// Package wire implements the LIFX LAN protocol wire format: the
// binary encoding used to control LIFX devices over a local network.
//
// # Packet layout
//
// Every packet starts with a fixed 36-byte header made of three
// blocks, followed by a payload whose shape is selected by the message
// type code:
//
//	Frame           8 bytes   size, flags word, source
//	Frame address  16 bytes   target, delivery flags, sequence
//	Protocol header 12 bytes  message type code
//	Payload         0+ bytes  one block per message type
//
// All multi-byte values are little-endian. Reserved regions are
// written as zero and ignored on decode.
//
// # Messages
//
// Each message type is a plain struct implementing Message. The set is
// closed and covers device, light, multizone and relay messages.
// EncodeMessage and DecodeMessage convert between a Message plus frame
// metadata and wire bytes; RawMessage exposes the intermediate framed
// form for transports that route on headers without interpreting
// payloads.
//
// # Strictness
//
// Input is assumed hostile. Decoding validates the protocol number and
// requires the buffer and payload lengths to match the frame exactly;
// failures wrap one of the package's sentinel errors. Decoded values
// themselves are carried losslessly: unknown enum codes, out-of-range
// levels and NaN floats survive a round trip bit for bit.
package wire
