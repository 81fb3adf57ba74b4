package wire

import "fmt"

// RawMessage is a fully framed packet: the three header blocks plus
// the payload bytes, before or after payload interpretation. It is the
// exchange format between the codec and a transport.
type RawMessage struct {
	Frame          Frame
	FrameAddress   FrameAddress
	ProtocolHeader ProtocolHeader
	Payload        []byte
}

// BuildOptions carries the frame metadata for an outgoing packet. The
// codec treats Source and Sequence as opaque; clients pick a nonzero
// Source to recognize their own responses and cycle Sequence per
// target to correlate replies.
type BuildOptions struct {
	Target Target
	// Tagged marks the packet as addressed to every device. It should
	// be true exactly when Target is AllDevices.
	Tagged      bool
	AckRequired bool
	ResRequired bool
	Sequence    uint8
	Source      uint32
}

// OptionsFor returns BuildOptions addressing target, tagged when the
// target is the broadcast one.
func OptionsFor(target Target) BuildOptions {
	return BuildOptions{Target: target, Tagged: target.IsAll()}
}

// BuildRawMessage assembles the headers and payload for msg. The frame
// size and protocol fields are filled in; addressable is always set.
func BuildRawMessage(opts BuildOptions, msg Message) (*RawMessage, error) {
	typ, payload, err := EncodePayload(msg)
	if err != nil {
		return nil, err
	}
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	return &RawMessage{
		Frame: Frame{
			Size:        uint16(HeaderSize + len(payload)),
			Tagged:      opts.Tagged,
			Addressable: true,
			Protocol:    ProtocolNumber,
			Source:      opts.Source,
		},
		FrameAddress: FrameAddress{
			Target:      opts.Target,
			AckRequired: opts.AckRequired,
			ResRequired: opts.ResRequired,
			Sequence:    opts.Sequence,
		},
		ProtocolHeader: ProtocolHeader{Type: typ},
		Payload:        payload,
	}, nil
}

// Encode packs the message into wire bytes. The frame size field is
// recomputed from the payload length.
func (m *RawMessage) Encode() ([]byte, error) {
	if len(m.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(m.Payload))
	}
	w := NewWriter()
	frame := m.Frame
	frame.Size = uint16(HeaderSize + len(m.Payload))
	frame.Encode(w)
	m.FrameAddress.Encode(w)
	m.ProtocolHeader.Encode(w)
	w.PutBytes(m.Payload)
	return w.Bytes(), nil
}

// DecodeRawMessage splits buf into header blocks and payload. The
// buffer must hold exactly one packet: a buffer shorter than the
// declared frame size fails with ErrTruncated and a longer one with
// ErrTrailingBytes. The payload is copied, so buf may be reused.
func DecodeRawMessage(buf []byte) (*RawMessage, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(buf), HeaderSize)
	}
	r := NewReader(buf)
	frame, err := DecodeFrame(r)
	if err != nil {
		return nil, err
	}
	addr, err := DecodeFrameAddress(r)
	if err != nil {
		return nil, err
	}
	ph, err := DecodeProtocolHeader(r)
	if err != nil {
		return nil, err
	}
	declared := int(frame.Size)
	switch {
	case declared > len(buf):
		return nil, fmt.Errorf("%w: frame declares %d bytes, buffer has %d", ErrTruncated, declared, len(buf))
	case declared < len(buf):
		return nil, fmt.Errorf("%w: frame declares %d bytes, buffer has %d", ErrTrailingBytes, declared, len(buf))
	}
	m := &RawMessage{Frame: frame, FrameAddress: addr, ProtocolHeader: ph}
	if declared > HeaderSize {
		m.Payload = append([]byte(nil), buf[HeaderSize:declared]...)
	}
	return m, nil
}

// EncodeMessage builds and packs msg in one step.
func EncodeMessage(opts BuildOptions, msg Message) ([]byte, error) {
	m, err := BuildRawMessage(opts, msg)
	if err != nil {
		return nil, err
	}
	return m.Encode()
}

// DecodeMessage splits buf and interprets the payload in one step.
// Decoding is all or nothing: any failure, including an unknown type
// code, yields no partial result.
func DecodeMessage(buf []byte) (*RawMessage, Message, error) {
	m, err := DecodeRawMessage(buf)
	if err != nil {
		return nil, nil, err
	}
	msg, err := DecodePayload(m.ProtocolHeader.Type, m.Payload)
	if err != nil {
		return nil, nil, err
	}
	return m, msg, nil
}
