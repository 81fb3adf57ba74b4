package wire

import "fmt"

// Sizes of the three header blocks every packet starts with, and the
// limits derived from them.
const (
	FrameSize          = 8
	FrameAddressSize   = 16
	ProtocolHeaderSize = 12
	HeaderSize         = FrameSize + FrameAddressSize + ProtocolHeaderSize

	// MaxPacketSize bounds the total packet size; the frame size field
	// is 16 bits.
	MaxPacketSize = 65535

	// MaxPayloadSize bounds the payload of a single packet.
	MaxPayloadSize = MaxPacketSize - HeaderSize
)

// ProtocolNumber is the fixed protocol number carried in every frame.
// Frames with any other value are rejected.
const ProtocolNumber = 1024

// Frame flags word layout: protocol in the low 12 bits, addressable at
// bit 12, tagged at bit 13, origin in bits 14-15.
const (
	flagsProtocolMask   = 0x0fff
	flagsAddressableBit = 1 << 12
	flagsTaggedBit      = 1 << 13
	flagsOriginShift    = 14
)

// Frame is the first header block. It carries the total packet size,
// the packed flags word and the client-chosen source identifier that
// devices echo back in responses.
type Frame struct {
	Size        uint16
	Origin      uint8
	Tagged      bool
	Addressable bool
	Protocol    uint16
	Source      uint32
}

// Encode appends the 8-byte frame block.
func (f Frame) Encode(w *Writer) {
	w.PutUint16(f.Size)
	flags := f.Protocol & flagsProtocolMask
	flags |= uint16(f.Origin&0b11) << flagsOriginShift
	if f.Tagged {
		flags |= flagsTaggedBit
	}
	if f.Addressable {
		flags |= flagsAddressableBit
	}
	w.PutUint16(flags)
	w.PutUint32(f.Source)
}

// DecodeFrame reads one frame block. It fails with ErrInvalidProtocol
// when the protocol field is not ProtocolNumber; flag bits are
// otherwise carried through as found.
func DecodeFrame(r *Reader) (Frame, error) {
	var f Frame
	f.Size = r.Uint16()
	flags := r.Uint16()
	f.Origin = uint8(flags >> flagsOriginShift)
	f.Tagged = flags&flagsTaggedBit != 0
	f.Addressable = flags&flagsAddressableBit != 0
	f.Protocol = flags & flagsProtocolMask
	f.Source = r.Uint32()
	if err := r.Err(); err != nil {
		return Frame{}, err
	}
	if f.Protocol != ProtocolNumber {
		return Frame{}, fmt.Errorf("%w: %d", ErrInvalidProtocol, f.Protocol)
	}
	return f, nil
}

// FrameAddress is the second header block: the target, the delivery
// flags and the client-assigned sequence number. The reserved regions
// around the flags are written as zero and ignored on decode.
type FrameAddress struct {
	Target      Target
	AckRequired bool
	ResRequired bool
	Sequence    uint8
}

// Encode appends the 16-byte frame address block.
func (a FrameAddress) Encode(w *Writer) {
	w.PutTarget(a.Target)
	w.PutZeros(6)
	var flags uint8
	if a.ResRequired {
		flags |= 0b01
	}
	if a.AckRequired {
		flags |= 0b10
	}
	w.PutUint8(flags)
	w.PutUint8(a.Sequence)
}

// DecodeFrameAddress reads one frame address block.
func DecodeFrameAddress(r *Reader) (FrameAddress, error) {
	var a FrameAddress
	a.Target = r.Target()
	r.Skip(6)
	flags := r.Uint8()
	a.ResRequired = flags&0b01 != 0
	a.AckRequired = flags&0b10 != 0
	a.Sequence = r.Uint8()
	return a, r.Err()
}

// ProtocolHeader is the third header block. Only the message type code
// is meaningful; the rest is reserved.
type ProtocolHeader struct {
	Type uint16
}

// Encode appends the 12-byte protocol header block.
func (h ProtocolHeader) Encode(w *Writer) {
	w.PutZeros(8)
	w.PutUint16(h.Type)
	w.PutZeros(2)
}

// DecodeProtocolHeader reads one protocol header block.
func DecodeProtocolHeader(r *Reader) (ProtocolHeader, error) {
	r.Skip(8)
	h := ProtocolHeader{Type: r.Uint16()}
	r.Skip(2)
	return h, r.Err()
}
