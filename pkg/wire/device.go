package wire

// Device messages are understood by every LIFX device regardless of
// product type. Get messages carry no payload and solicit the matching
// State message; Set messages change device state and solicit a State
// when res_required is set.

// GetService asks devices to identify themselves and the service they
// speak. Usually sent as a tagged broadcast during discovery.
type GetService struct{}

func (GetService) Type() uint16          { return TypeGetService }
func (GetService) marshal(*Writer) error { return nil }

// StateService reports a service a device exposes and the UDP port it
// listens on.
type StateService struct {
	Service Service
	Port    uint32
}

func (StateService) Type() uint16 { return TypeStateService }

func (m StateService) marshal(w *Writer) error {
	w.PutUint8(uint8(m.Service))
	w.PutUint32(m.Port)
	return nil
}

func decodeStateService(r *Reader) Message {
	return StateService{Service: Service(r.Uint8()), Port: r.Uint32()}
}

// GetHostInfo asks for host MCU signal and transfer counters.
type GetHostInfo struct{}

func (GetHostInfo) Type() uint16          { return TypeGetHostInfo }
func (GetHostInfo) marshal(*Writer) error { return nil }

// StateHostInfo reports host MCU signal strength and byte counters.
type StateHostInfo struct {
	// Signal is in milliwatts. The bit pattern is preserved exactly,
	// so NaN values observed on the wire survive a round trip.
	Signal float32
	TX     uint32
	RX     uint32
}

func (StateHostInfo) Type() uint16 { return TypeStateHostInfo }

func (m StateHostInfo) marshal(w *Writer) error {
	w.PutFloat32(m.Signal)
	w.PutUint32(m.TX)
	w.PutUint32(m.RX)
	w.PutZeros(2)
	return nil
}

func decodeStateHostInfo(r *Reader) Message {
	m := StateHostInfo{Signal: r.Float32(), TX: r.Uint32(), RX: r.Uint32()}
	r.Skip(2)
	return m
}

// Firmware is the version block shared by host and wifi firmware
// state messages.
type Firmware struct {
	// Build is the firmware build time in nanoseconds since the epoch.
	Build        uint64
	VersionMinor uint16
	VersionMajor uint16
}

func (f Firmware) encode(w *Writer) {
	w.PutUint64(f.Build)
	w.PutZeros(8)
	w.PutUint16(f.VersionMinor)
	w.PutUint16(f.VersionMajor)
}

func decodeFirmware(r *Reader) Firmware {
	var f Firmware
	f.Build = r.Uint64()
	r.Skip(8)
	f.VersionMinor = r.Uint16()
	f.VersionMajor = r.Uint16()
	return f
}

// GetHostFirmware asks for the host MCU firmware version.
type GetHostFirmware struct{}

func (GetHostFirmware) Type() uint16          { return TypeGetHostFirmware }
func (GetHostFirmware) marshal(*Writer) error { return nil }

// StateHostFirmware reports the host MCU firmware version.
type StateHostFirmware struct {
	Firmware Firmware
}

func (StateHostFirmware) Type() uint16 { return TypeStateHostFirmware }

func (m StateHostFirmware) marshal(w *Writer) error {
	m.Firmware.encode(w)
	return nil
}

// GetWifiInfo asks for wifi subsystem signal and transfer counters.
type GetWifiInfo struct{}

func (GetWifiInfo) Type() uint16          { return TypeGetWifiInfo }
func (GetWifiInfo) marshal(*Writer) error { return nil }

// StateWifiInfo reports wifi subsystem signal strength and byte
// counters.
type StateWifiInfo struct {
	Signal float32
	TX     uint32
	RX     uint32
}

func (StateWifiInfo) Type() uint16 { return TypeStateWifiInfo }

func (m StateWifiInfo) marshal(w *Writer) error {
	w.PutFloat32(m.Signal)
	w.PutUint32(m.TX)
	w.PutUint32(m.RX)
	w.PutZeros(2)
	return nil
}

func decodeStateWifiInfo(r *Reader) Message {
	m := StateWifiInfo{Signal: r.Float32(), TX: r.Uint32(), RX: r.Uint32()}
	r.Skip(2)
	return m
}

// GetWifiFirmware asks for the wifi subsystem firmware version.
type GetWifiFirmware struct{}

func (GetWifiFirmware) Type() uint16          { return TypeGetWifiFirmware }
func (GetWifiFirmware) marshal(*Writer) error { return nil }

// StateWifiFirmware reports the wifi subsystem firmware version.
type StateWifiFirmware struct {
	Firmware Firmware
}

func (StateWifiFirmware) Type() uint16 { return TypeStateWifiFirmware }

func (m StateWifiFirmware) marshal(w *Writer) error {
	m.Firmware.encode(w)
	return nil
}

// GetPower asks for the device power level.
type GetPower struct{}

func (GetPower) Type() uint16          { return TypeGetPower }
func (GetPower) marshal(*Writer) error { return nil }

// SetPower sets the device power level. Devices treat any nonzero
// level as on; the level is carried raw in both directions.
type SetPower struct {
	Level uint16
}

func (SetPower) Type() uint16 { return TypeSetPower }

func (m SetPower) marshal(w *Writer) error {
	w.PutUint16(m.Level)
	return nil
}

// StatePower reports the device power level.
type StatePower struct {
	Level uint16
}

func (StatePower) Type() uint16 { return TypeStatePower }

func (m StatePower) marshal(w *Writer) error {
	w.PutUint16(m.Level)
	return nil
}

// GetLabel asks for the device label.
type GetLabel struct{}

func (GetLabel) Type() uint16          { return TypeGetLabel }
func (GetLabel) marshal(*Writer) error { return nil }

// SetLabel sets the device label.
type SetLabel struct {
	Label Label
}

func (SetLabel) Type() uint16 { return TypeSetLabel }

func (m SetLabel) marshal(w *Writer) error {
	w.PutLabel(m.Label)
	return nil
}

// StateLabel reports the device label.
type StateLabel struct {
	Label Label
}

func (StateLabel) Type() uint16 { return TypeStateLabel }

func (m StateLabel) marshal(w *Writer) error {
	w.PutLabel(m.Label)
	return nil
}

// GetVersion asks for the hardware version.
type GetVersion struct{}

func (GetVersion) Type() uint16          { return TypeGetVersion }
func (GetVersion) marshal(*Writer) error { return nil }

// StateVersion reports the hardware vendor, product and version. The
// product code determines device capabilities such as multizone or
// infrared support.
type StateVersion struct {
	Vendor  uint32
	Product uint32
	Version uint32
}

func (StateVersion) Type() uint16 { return TypeStateVersion }

func (m StateVersion) marshal(w *Writer) error {
	w.PutUint32(m.Vendor)
	w.PutUint32(m.Product)
	w.PutUint32(m.Version)
	return nil
}

// GetInfo asks for run-time information.
type GetInfo struct{}

func (GetInfo) Type() uint16          { return TypeGetInfo }
func (GetInfo) marshal(*Writer) error { return nil }

// StateInfo reports device time and uptime counters, all in
// nanoseconds.
type StateInfo struct {
	Time     uint64
	Uptime   uint64
	Downtime uint64
}

func (StateInfo) Type() uint16 { return TypeStateInfo }

func (m StateInfo) marshal(w *Writer) error {
	w.PutUint64(m.Time)
	w.PutUint64(m.Uptime)
	w.PutUint64(m.Downtime)
	return nil
}

func decodeStateInfo(r *Reader) Message {
	return StateInfo{Time: r.Uint64(), Uptime: r.Uint64(), Downtime: r.Uint64()}
}

// Acknowledgement confirms receipt of a message sent with ack_required
// set. It carries no payload; the frame address sequence number links
// it to the original message.
type Acknowledgement struct{}

func (Acknowledgement) Type() uint16          { return TypeAcknowledgement }
func (Acknowledgement) marshal(*Writer) error { return nil }

// Membership is the payload block shared by location and group
// messages: an opaque identifier, a display label and the time the
// pairing was last changed.
type Membership struct {
	ID    Ident
	Label Label
	// UpdatedAt is nanoseconds since the epoch. Receivers keep the
	// membership with the newest UpdatedAt when devices disagree.
	UpdatedAt uint64
}

func (m Membership) encode(w *Writer) {
	w.PutIdent(m.ID)
	w.PutLabel(m.Label)
	w.PutUint64(m.UpdatedAt)
}

func decodeMembership(r *Reader) Membership {
	return Membership{ID: r.Ident(), Label: r.Label(), UpdatedAt: r.Uint64()}
}

// GetLocation asks for the device location.
type GetLocation struct{}

func (GetLocation) Type() uint16          { return TypeGetLocation }
func (GetLocation) marshal(*Writer) error { return nil }

// SetLocation assigns the device to a location.
type SetLocation struct {
	Membership Membership
}

func (SetLocation) Type() uint16 { return TypeSetLocation }

func (m SetLocation) marshal(w *Writer) error {
	m.Membership.encode(w)
	return nil
}

// StateLocation reports the device location.
type StateLocation struct {
	Membership Membership
}

func (StateLocation) Type() uint16 { return TypeStateLocation }

func (m StateLocation) marshal(w *Writer) error {
	m.Membership.encode(w)
	return nil
}

// GetGroup asks for the device group.
type GetGroup struct{}

func (GetGroup) Type() uint16          { return TypeGetGroup }
func (GetGroup) marshal(*Writer) error { return nil }

// SetGroup assigns the device to a group.
type SetGroup struct {
	Membership Membership
}

func (SetGroup) Type() uint16 { return TypeSetGroup }

func (m SetGroup) marshal(w *Writer) error {
	m.Membership.encode(w)
	return nil
}

// StateGroup reports the device group.
type StateGroup struct {
	Membership Membership
}

func (StateGroup) Type() uint16 { return TypeStateGroup }

func (m StateGroup) marshal(w *Writer) error {
	m.Membership.encode(w)
	return nil
}

// EchoRequest asks the device to send the payload back in an
// EchoReply. Useful as a liveness probe.
type EchoRequest struct {
	Payload EchoPayload
}

func (EchoRequest) Type() uint16 { return TypeEchoRequest }

func (m EchoRequest) marshal(w *Writer) error {
	w.PutEchoPayload(m.Payload)
	return nil
}

// EchoReply returns the payload of an EchoRequest verbatim.
type EchoReply struct {
	Payload EchoPayload
}

func (EchoReply) Type() uint16 { return TypeEchoReply }

func (m EchoReply) marshal(w *Writer) error {
	w.PutEchoPayload(m.Payload)
	return nil
}
