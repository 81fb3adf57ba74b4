package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// HSBK describes a color as hue, saturation, brightness and color
// temperature. All four components use the full 16-bit range: hue maps
// [0, 65535] onto [0°, 360°), saturation and brightness map onto
// [0%, 100%], and kelvin is the color temperature directly (bulbs
// accept roughly 2500 to 9000).
type HSBK struct {
	Hue        uint16
	Saturation uint16
	Brightness uint16
	Kelvin     uint16
}

// HSBKSize is the packed size of one HSBK value.
const HSBKSize = 8

// HSBK reads one packed color value.
func (r *Reader) HSBK() HSBK {
	return HSBK{
		Hue:        r.Uint16(),
		Saturation: r.Uint16(),
		Brightness: r.Uint16(),
		Kelvin:     r.Uint16(),
	}
}

// PutHSBK appends one packed color value.
func (w *Writer) PutHSBK(c HSBK) {
	w.PutUint16(c.Hue)
	w.PutUint16(c.Saturation)
	w.PutUint16(c.Brightness)
	w.PutUint16(c.Kelvin)
}

// Target selects the destination of a packet: one device by its 6-byte
// serial, or every device on the network. The zero value is
// AllDevices.
//
// On the wire the target occupies 8 bytes. A device serial fills the
// first 6 with the last 2 zero; AllDevices is all 8 zero. Decoding
// ignores the trailing 2 bytes.
type Target [6]byte

// AllDevices addresses every device on the network. Packets built for
// it should be tagged broadcasts.
var AllDevices = Target{}

// IsAll reports whether t is the broadcast target.
func (t Target) IsAll() bool {
	return t == AllDevices
}

// String formats a device serial as colon-separated hex, or "all" for
// the broadcast target.
func (t Target) String() string {
	if t.IsAll() {
		return "all"
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", t[0], t[1], t[2], t[3], t[4], t[5])
}

// ParseTarget parses a colon-separated hex serial as printed by
// Target.String. The literal "all" yields AllDevices.
func ParseTarget(s string) (Target, error) {
	if s == "all" || s == "*" {
		return AllDevices, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return Target{}, fmt.Errorf("invalid target %q: want 6 colon-separated hex bytes", s)
	}
	var t Target
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil || len(p) != 2 {
			return Target{}, fmt.Errorf("invalid target %q: bad byte %q", s, p)
		}
		t[i] = uint8(v)
	}
	return t, nil
}

// Target reads the 8-byte target field.
func (r *Reader) Target() Target {
	var t Target
	r.Bytes(t[:])
	r.Skip(2)
	return t
}

// PutTarget appends the 8-byte target field.
func (w *Writer) PutTarget(t Target) {
	w.PutBytes(t[:])
	w.PutZeros(2)
}

// Label is a user-assigned device, group or location name. On the wire
// a label occupies a fixed 32-byte field, NUL padded; encoding
// truncates to 31 bytes so the field always ends with at least one
// NUL, and decoding stops at the first NUL.
type Label string

// LabelSize is the packed size of a label field.
const LabelSize = 32

// Label reads one 32-byte label field.
func (r *Reader) Label() Label {
	var b [LabelSize]byte
	r.Bytes(b[:])
	s := b[:]
	if i := strings.IndexByte(string(s), 0); i >= 0 {
		s = s[:i]
	}
	return Label(s)
}

// PutLabel appends one 32-byte label field.
func (w *Writer) PutLabel(l Label) {
	b := []byte(l)
	if len(b) > LabelSize-1 {
		b = b[:LabelSize-1]
	}
	w.PutBytes(b)
	w.PutZeros(LabelSize - len(b))
}

// Ident is the opaque 16-byte identifier carried in location and group
// messages. The official apps generate these as random UUIDs, so Ident
// converts to and from uuid.UUID, but any 16 bytes round-trip
// unchanged.
type Ident [16]byte

// IdentSize is the packed size of an Ident.
const IdentSize = 16

// IdentFromUUID converts a UUID to an Ident.
func IdentFromUUID(u uuid.UUID) Ident {
	return Ident(u)
}

// NewIdent returns a random Ident, matching how the official apps
// assign location and group identifiers.
func NewIdent() Ident {
	return Ident(uuid.New())
}

// UUID returns the Ident interpreted as a UUID.
func (i Ident) UUID() uuid.UUID {
	return uuid.UUID(i)
}

func (i Ident) String() string {
	return i.UUID().String()
}

// Ident reads one 16-byte identifier.
func (r *Reader) Ident() Ident {
	var i Ident
	r.Bytes(i[:])
	return i
}

// PutIdent appends one 16-byte identifier.
func (w *Writer) PutIdent(i Ident) {
	w.PutBytes(i[:])
}

// EchoPayload is the fixed 64-byte blob carried by EchoRequest and
// EchoReply. Devices return it verbatim.
type EchoPayload [64]byte

// EchoPayload reads one 64-byte echo blob.
func (r *Reader) EchoPayload() EchoPayload {
	var p EchoPayload
	r.Bytes(p[:])
	return p
}

// PutEchoPayload appends one 64-byte echo blob.
func (w *Writer) PutEchoPayload(p EchoPayload) {
	w.PutBytes(p[:])
}
