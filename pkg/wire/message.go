package wire

import "fmt"

// Message type codes as they appear in the protocol header.
const (
	TypeGetService                 uint16 = 2
	TypeStateService               uint16 = 3
	TypeGetHostInfo                uint16 = 12
	TypeStateHostInfo              uint16 = 13
	TypeGetHostFirmware            uint16 = 14
	TypeStateHostFirmware          uint16 = 15
	TypeGetWifiInfo                uint16 = 16
	TypeStateWifiInfo              uint16 = 17
	TypeGetWifiFirmware            uint16 = 18
	TypeStateWifiFirmware          uint16 = 19
	TypeGetPower                   uint16 = 20
	TypeSetPower                   uint16 = 21
	TypeStatePower                 uint16 = 22
	TypeGetLabel                   uint16 = 23
	TypeSetLabel                   uint16 = 24
	TypeStateLabel                 uint16 = 25
	TypeGetVersion                 uint16 = 32
	TypeStateVersion               uint16 = 33
	TypeGetInfo                    uint16 = 34
	TypeStateInfo                  uint16 = 35
	TypeAcknowledgement            uint16 = 45
	TypeGetLocation                uint16 = 48
	TypeSetLocation                uint16 = 49
	TypeStateLocation              uint16 = 50
	TypeGetGroup                   uint16 = 51
	TypeSetGroup                   uint16 = 52
	TypeStateGroup                 uint16 = 53
	TypeEchoRequest                uint16 = 58
	TypeEchoReply                  uint16 = 59
	TypeGetColor                   uint16 = 101
	TypeSetColor                   uint16 = 102
	TypeSetWaveform                uint16 = 103
	TypeLightState                 uint16 = 107
	TypeGetLightPower              uint16 = 116
	TypeSetLightPower              uint16 = 117
	TypeStateLightPower            uint16 = 118
	TypeSetWaveformOptional        uint16 = 119
	TypeGetInfrared                uint16 = 120
	TypeStateInfrared              uint16 = 121
	TypeSetInfrared                uint16 = 122
	TypeGetHevCycle                uint16 = 142
	TypeSetHevCycle                uint16 = 143
	TypeStateHevCycle              uint16 = 144
	TypeGetHevCycleConfiguration   uint16 = 145
	TypeSetHevCycleConfiguration   uint16 = 146
	TypeStateHevCycleConfiguration uint16 = 147
	TypeGetLastHevCycleResult      uint16 = 148
	TypeStateLastHevCycleResult    uint16 = 149
	TypeSetColorZones              uint16 = 501
	TypeGetColorZones              uint16 = 502
	TypeStateZone                  uint16 = 503
	TypeStateMultiZone             uint16 = 506
	TypeGetMultiZoneEffect         uint16 = 507
	TypeSetMultiZoneEffect         uint16 = 508
	TypeStateMultiZoneEffect       uint16 = 509
	TypeGetExtendedColorZones      uint16 = 511
	TypeStateExtendedColorZones    uint16 = 512
	TypeGetRelayPower              uint16 = 816
	TypeSetRelayPower              uint16 = 817
	TypeStateRelayPower            uint16 = 818
)

// Message is one decoded protocol message. The set of implementations
// is closed: device messages live in device.go, light messages in
// light.go and multizone messages in multizone.go.
//
// Messages are plain values. Encoding never mutates them and decoding
// builds fresh ones, so they are safe to share across goroutines.
type Message interface {
	// Type returns the message type code carried in the protocol
	// header for this variant.
	Type() uint16

	marshal(w *Writer) error
}

// EncodePayload encodes msg into its type code and payload bytes.
func EncodePayload(msg Message) (uint16, []byte, error) {
	w := NewWriter()
	if err := msg.marshal(w); err != nil {
		return 0, nil, err
	}
	return msg.Type(), w.Bytes(), nil
}

// payloadCodec describes the payload shape of one message type: the
// exact payload length, or variable for the zone list message, and a
// decoder that may assume the length has been checked.
type payloadCodec struct {
	size     int
	variable bool
	decode   func(r *Reader) Message
}

// DecodePayload decodes the payload of a message according to its type
// code. The payload length must match the type exactly; surplus or
// missing bytes fail with ErrMalformedPayload rather than being
// ignored.
func DecodePayload(typ uint16, payload []byte) (Message, error) {
	codec, ok := payloadCodecs[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
	if codec.variable {
		if len(payload) == 0 {
			return nil, fmt.Errorf("%w: type %d: missing zone count", ErrMalformedPayload, typ)
		}
		count := int(payload[0])
		if count > MaxZones {
			return nil, fmt.Errorf("%w: %d zones, limit %d", ErrInvalidZoneCount, count, MaxZones)
		}
		if want := 1 + count*HSBKSize; len(payload) != want {
			return nil, fmt.Errorf("%w: type %d: %d zones need %d bytes, got %d",
				ErrMalformedPayload, typ, count, want, len(payload))
		}
	} else if len(payload) != codec.size {
		return nil, fmt.Errorf("%w: type %d: got %d payload bytes, want %d",
			ErrMalformedPayload, typ, len(payload), codec.size)
	}
	r := NewReader(payload)
	msg := codec.decode(r)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: type %d: %v", ErrMalformedPayload, typ, err)
	}
	return msg, nil
}

// payloadCodecs maps every supported type code to its payload shape.
// Sizes are the packed struct sizes from the protocol documentation.
// The table is read-only after package initialization.
var payloadCodecs = map[uint16]payloadCodec{
	// Device messages.
	TypeGetService:      {size: 0, decode: func(*Reader) Message { return GetService{} }},
	TypeStateService:    {size: 5, decode: decodeStateService},
	TypeGetHostInfo:     {size: 0, decode: func(*Reader) Message { return GetHostInfo{} }},
	TypeStateHostInfo:   {size: 14, decode: decodeStateHostInfo},
	TypeGetHostFirmware: {size: 0, decode: func(*Reader) Message { return GetHostFirmware{} }},
	TypeStateHostFirmware: {size: 20, decode: func(r *Reader) Message {
		return StateHostFirmware{Firmware: decodeFirmware(r)}
	}},
	TypeGetWifiInfo:     {size: 0, decode: func(*Reader) Message { return GetWifiInfo{} }},
	TypeStateWifiInfo:   {size: 14, decode: decodeStateWifiInfo},
	TypeGetWifiFirmware: {size: 0, decode: func(*Reader) Message { return GetWifiFirmware{} }},
	TypeStateWifiFirmware: {size: 20, decode: func(r *Reader) Message {
		return StateWifiFirmware{Firmware: decodeFirmware(r)}
	}},
	TypeGetPower:   {size: 0, decode: func(*Reader) Message { return GetPower{} }},
	TypeSetPower:   {size: 2, decode: func(r *Reader) Message { return SetPower{Level: r.Uint16()} }},
	TypeStatePower: {size: 2, decode: func(r *Reader) Message { return StatePower{Level: r.Uint16()} }},
	TypeGetLabel:   {size: 0, decode: func(*Reader) Message { return GetLabel{} }},
	TypeSetLabel:   {size: 32, decode: func(r *Reader) Message { return SetLabel{Label: r.Label()} }},
	TypeStateLabel: {size: 32, decode: func(r *Reader) Message { return StateLabel{Label: r.Label()} }},
	TypeGetVersion: {size: 0, decode: func(*Reader) Message { return GetVersion{} }},
	TypeStateVersion: {size: 12, decode: func(r *Reader) Message {
		return StateVersion{Vendor: r.Uint32(), Product: r.Uint32(), Version: r.Uint32()}
	}},
	TypeGetInfo:         {size: 0, decode: func(*Reader) Message { return GetInfo{} }},
	TypeStateInfo:       {size: 24, decode: decodeStateInfo},
	TypeAcknowledgement: {size: 0, decode: func(*Reader) Message { return Acknowledgement{} }},
	TypeGetLocation:     {size: 0, decode: func(*Reader) Message { return GetLocation{} }},
	TypeSetLocation: {size: 56, decode: func(r *Reader) Message {
		return SetLocation{Membership: decodeMembership(r)}
	}},
	TypeStateLocation: {size: 56, decode: func(r *Reader) Message {
		return StateLocation{Membership: decodeMembership(r)}
	}},
	TypeGetGroup: {size: 0, decode: func(*Reader) Message { return GetGroup{} }},
	TypeSetGroup: {size: 56, decode: func(r *Reader) Message {
		return SetGroup{Membership: decodeMembership(r)}
	}},
	TypeStateGroup: {size: 56, decode: func(r *Reader) Message {
		return StateGroup{Membership: decodeMembership(r)}
	}},
	TypeEchoRequest: {size: 64, decode: func(r *Reader) Message { return EchoRequest{Payload: r.EchoPayload()} }},
	TypeEchoReply:   {size: 64, decode: func(r *Reader) Message { return EchoReply{Payload: r.EchoPayload()} }},

	// Light messages.
	TypeGetColor:      {size: 0, decode: func(*Reader) Message { return GetColor{} }},
	TypeSetColor:      {size: 13, decode: decodeSetColor},
	TypeSetWaveform:   {size: 21, decode: decodeSetWaveform},
	TypeLightState:    {size: 52, decode: decodeLightState},
	TypeGetLightPower: {size: 0, decode: func(*Reader) Message { return GetLightPower{} }},
	TypeSetLightPower: {size: 6, decode: func(r *Reader) Message {
		return SetLightPower{Level: r.Uint16(), Duration: r.Uint32()}
	}},
	TypeStateLightPower:     {size: 2, decode: func(r *Reader) Message { return StateLightPower{Level: r.Uint16()} }},
	TypeSetWaveformOptional: {size: 25, decode: decodeSetWaveformOptional},
	TypeGetInfrared:         {size: 0, decode: func(*Reader) Message { return GetInfrared{} }},
	TypeStateInfrared:       {size: 2, decode: func(r *Reader) Message { return StateInfrared{Brightness: r.Uint16()} }},
	TypeSetInfrared:         {size: 2, decode: func(r *Reader) Message { return SetInfrared{Brightness: r.Uint16()} }},
	TypeGetHevCycle:         {size: 0, decode: func(*Reader) Message { return GetHevCycle{} }},
	TypeSetHevCycle: {size: 5, decode: func(r *Reader) Message {
		return SetHevCycle{Enable: r.Bool(), Duration: r.Uint32()}
	}},
	TypeStateHevCycle: {size: 9, decode: func(r *Reader) Message {
		return StateHevCycle{Duration: r.Uint32(), Remaining: r.Uint32(), LastPower: r.Bool()}
	}},
	TypeGetHevCycleConfiguration: {size: 0, decode: func(*Reader) Message { return GetHevCycleConfiguration{} }},
	TypeSetHevCycleConfiguration: {size: 5, decode: func(r *Reader) Message {
		return SetHevCycleConfiguration{Indication: r.Bool(), Duration: r.Uint32()}
	}},
	TypeStateHevCycleConfiguration: {size: 5, decode: func(r *Reader) Message {
		return StateHevCycleConfiguration{Indication: r.Bool(), Duration: r.Uint32()}
	}},
	TypeGetLastHevCycleResult: {size: 0, decode: func(*Reader) Message { return GetLastHevCycleResult{} }},
	TypeStateLastHevCycleResult: {size: 1, decode: func(r *Reader) Message {
		return StateLastHevCycleResult{Result: HevCycleResult(r.Uint8())}
	}},

	// MultiZone and relay messages.
	TypeSetColorZones: {size: 15, decode: decodeSetColorZones},
	TypeGetColorZones: {size: 2, decode: func(r *Reader) Message {
		return GetColorZones{StartIndex: r.Uint8(), EndIndex: r.Uint8()}
	}},
	TypeStateZone: {size: 10, decode: func(r *Reader) Message {
		return StateZone{Count: r.Uint8(), Index: r.Uint8(), Color: r.HSBK()}
	}},
	TypeStateMultiZone:       {variable: true, decode: decodeStateMultiZone},
	TypeGetMultiZoneEffect:   {size: 0, decode: func(*Reader) Message { return GetMultiZoneEffect{} }},
	TypeSetMultiZoneEffect:   {size: 59, decode: func(r *Reader) Message { return SetMultiZoneEffect{Settings: decodeEffectSettings(r)} }},
	TypeStateMultiZoneEffect: {size: 59, decode: func(r *Reader) Message { return StateMultiZoneEffect{Settings: decodeEffectSettings(r)} }},
	TypeGetExtendedColorZones: {size: 0, decode: func(*Reader) Message {
		return GetExtendedColorZones{}
	}},
	TypeStateExtendedColorZones: {size: 661, decode: decodeStateExtendedColorZones},
	TypeGetRelayPower:           {size: 1, decode: func(r *Reader) Message { return GetRelayPower{RelayIndex: r.Uint8()} }},
	TypeSetRelayPower: {size: 3, decode: func(r *Reader) Message {
		return SetRelayPower{RelayIndex: r.Uint8(), Level: r.Uint16()}
	}},
	TypeStateRelayPower: {size: 3, decode: func(r *Reader) Message {
		return StateRelayPower{RelayIndex: r.Uint8(), Level: r.Uint16()}
	}},
}
