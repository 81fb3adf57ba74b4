package wire

import "fmt"

// MultiZone messages address products with individually controllable
// zones, such as light strips and beams. Relay power messages for
// switch products live here as well.

// MaxZones is the largest zone color list a single StateMultiZone
// message can carry.
const MaxZones = 82

// SetColorZones fades a contiguous run of zones to one color. Both
// indices are inclusive.
type SetColorZones struct {
	StartIndex uint8
	EndIndex   uint8
	Color      HSBK
	// Duration is the fade time in milliseconds.
	Duration uint32
	Apply    ApplicationRequest
}

func (SetColorZones) Type() uint16 { return TypeSetColorZones }

func (m SetColorZones) marshal(w *Writer) error {
	w.PutUint8(m.StartIndex)
	w.PutUint8(m.EndIndex)
	w.PutHSBK(m.Color)
	w.PutUint32(m.Duration)
	w.PutUint8(uint8(m.Apply))
	return nil
}

func decodeSetColorZones(r *Reader) Message {
	return SetColorZones{
		StartIndex: r.Uint8(),
		EndIndex:   r.Uint8(),
		Color:      r.HSBK(),
		Duration:   r.Uint32(),
		Apply:      ApplicationRequest(r.Uint8()),
	}
}

// GetColorZones asks for the colors of a contiguous run of zones.
// Depending on the range the device answers with StateZone or one or
// more StateMultiZone messages.
type GetColorZones struct {
	StartIndex uint8
	EndIndex   uint8
}

func (GetColorZones) Type() uint16 { return TypeGetColorZones }

func (m GetColorZones) marshal(w *Writer) error {
	w.PutUint8(m.StartIndex)
	w.PutUint8(m.EndIndex)
	return nil
}

// StateZone reports the color of a single zone along with the total
// zone count of the device.
type StateZone struct {
	Count uint8
	Index uint8
	Color HSBK
}

func (StateZone) Type() uint16 { return TypeStateZone }

func (m StateZone) marshal(w *Writer) error {
	w.PutUint8(m.Count)
	w.PutUint8(m.Index)
	w.PutHSBK(m.Color)
	return nil
}

// StateMultiZone reports a run of zone colors. The payload is a count
// byte followed by that many packed colors, so its size varies with
// the list; encoding a list longer than MaxZones fails with
// ErrInvalidZoneCount.
type StateMultiZone struct {
	Colors []HSBK
}

func (StateMultiZone) Type() uint16 { return TypeStateMultiZone }

func (m StateMultiZone) marshal(w *Writer) error {
	if len(m.Colors) > MaxZones {
		return fmt.Errorf("%w: %d zones, limit %d", ErrInvalidZoneCount, len(m.Colors), MaxZones)
	}
	w.PutUint8(uint8(len(m.Colors)))
	for _, c := range m.Colors {
		w.PutHSBK(c)
	}
	return nil
}

func decodeStateMultiZone(r *Reader) Message {
	count := r.Uint8()
	var m StateMultiZone
	if count == 0 {
		return m
	}
	m.Colors = make([]HSBK, count)
	for i := range m.Colors {
		m.Colors[i] = r.HSBK()
	}
	return m
}

// EffectSettings describes a firmware multizone effect. The parameter
// block is opaque; its meaning depends on the effect type and firmware
// version.
type EffectSettings struct {
	// InstanceID distinguishes one running effect from the next.
	InstanceID uint32
	Effect     EffectType
	// Speed is the cycle time in milliseconds.
	Speed uint32
	// Duration is how long the effect runs, in nanoseconds; zero means
	// until further notice.
	Duration   uint64
	Parameters [32]byte
}

func (s EffectSettings) encode(w *Writer) {
	w.PutUint32(s.InstanceID)
	w.PutUint8(uint8(s.Effect))
	w.PutZeros(2)
	w.PutUint32(s.Speed)
	w.PutUint64(s.Duration)
	w.PutZeros(8)
	w.PutBytes(s.Parameters[:])
}

func decodeEffectSettings(r *Reader) EffectSettings {
	var s EffectSettings
	s.InstanceID = r.Uint32()
	s.Effect = EffectType(r.Uint8())
	r.Skip(2)
	s.Speed = r.Uint32()
	s.Duration = r.Uint64()
	r.Skip(8)
	r.Bytes(s.Parameters[:])
	return s
}

// GetMultiZoneEffect asks for the running firmware effect.
type GetMultiZoneEffect struct{}

func (GetMultiZoneEffect) Type() uint16          { return TypeGetMultiZoneEffect }
func (GetMultiZoneEffect) marshal(*Writer) error { return nil }

// SetMultiZoneEffect starts or stops a firmware effect.
type SetMultiZoneEffect struct {
	Settings EffectSettings
}

func (SetMultiZoneEffect) Type() uint16 { return TypeSetMultiZoneEffect }

func (m SetMultiZoneEffect) marshal(w *Writer) error {
	m.Settings.encode(w)
	return nil
}

// StateMultiZoneEffect reports the running firmware effect.
type StateMultiZoneEffect struct {
	Settings EffectSettings
}

func (StateMultiZoneEffect) Type() uint16 { return TypeStateMultiZoneEffect }

func (m StateMultiZoneEffect) marshal(w *Writer) error {
	m.Settings.encode(w)
	return nil
}

// ExtendedZoneColors is the number of color slots in a
// StateExtendedColorZones message. The block is fixed size regardless
// of how many slots are meaningful.
const ExtendedZoneColors = 82

// GetExtendedColorZones asks for all zone colors in extended form.
type GetExtendedColorZones struct{}

func (GetExtendedColorZones) Type() uint16          { return TypeGetExtendedColorZones }
func (GetExtendedColorZones) marshal(*Writer) error { return nil }

// StateExtendedColorZones reports up to 82 zone colors in one fixed
// size block. ColorsCount says how many of the slots carry data.
type StateExtendedColorZones struct {
	ZonesCount  uint16
	ZoneIndex   uint16
	ColorsCount uint8
	Colors      [ExtendedZoneColors]HSBK
}

func (StateExtendedColorZones) Type() uint16 { return TypeStateExtendedColorZones }

func (m StateExtendedColorZones) marshal(w *Writer) error {
	w.PutUint16(m.ZonesCount)
	w.PutUint16(m.ZoneIndex)
	w.PutUint8(m.ColorsCount)
	for _, c := range m.Colors {
		w.PutHSBK(c)
	}
	return nil
}

func decodeStateExtendedColorZones(r *Reader) Message {
	var m StateExtendedColorZones
	m.ZonesCount = r.Uint16()
	m.ZoneIndex = r.Uint16()
	m.ColorsCount = r.Uint8()
	for i := range m.Colors {
		m.Colors[i] = r.HSBK()
	}
	return m
}

// GetRelayPower asks for the power state of one relay on a switch
// product.
type GetRelayPower struct {
	RelayIndex uint8
}

func (GetRelayPower) Type() uint16 { return TypeGetRelayPower }

func (m GetRelayPower) marshal(w *Writer) error {
	w.PutUint8(m.RelayIndex)
	return nil
}

// SetRelayPower sets the power state of one relay.
type SetRelayPower struct {
	RelayIndex uint8
	Level      uint16
}

func (SetRelayPower) Type() uint16 { return TypeSetRelayPower }

func (m SetRelayPower) marshal(w *Writer) error {
	w.PutUint8(m.RelayIndex)
	w.PutUint16(m.Level)
	return nil
}

// StateRelayPower reports the power state of one relay.
type StateRelayPower struct {
	RelayIndex uint8
	Level      uint16
}

func (StateRelayPower) Type() uint16 { return TypeStateRelayPower }

func (m StateRelayPower) marshal(w *Writer) error {
	w.PutUint8(m.RelayIndex)
	w.PutUint16(m.Level)
	return nil
}
