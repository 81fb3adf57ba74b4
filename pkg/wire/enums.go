package wire

import "fmt"

// The typed codes below are carried through the codec unchanged.
// Decoding never rejects or rewrites an out-of-range code: firmware
// revisions add codes faster than documentation does, and a lossless
// round trip matters more than early validation. String falls back to
// a numeric form for codes it does not know.

// Service identifies the service advertised in StateService.
type Service uint8

const (
	// ServiceUDP is the LIFX LAN protocol over UDP, the only service
	// current devices advertise with a usable port.
	ServiceUDP Service = 1
)

func (s Service) String() string {
	if s == ServiceUDP {
		return "UDP"
	}
	return fmt.Sprintf("Service(%d)", uint8(s))
}

// Waveform selects the light modulation shape used by SetWaveform and
// SetWaveformOptional.
type Waveform uint8

const (
	WaveformSaw      Waveform = 0
	WaveformSine     Waveform = 1
	WaveformHalfSine Waveform = 2
	WaveformTriangle Waveform = 3
	// WaveformPulse alternates between the current color and the
	// requested one, with the duty cycle set by the skew ratio.
	WaveformPulse Waveform = 4
)

func (v Waveform) String() string {
	switch v {
	case WaveformSaw:
		return "Saw"
	case WaveformSine:
		return "Sine"
	case WaveformHalfSine:
		return "HalfSine"
	case WaveformTriangle:
		return "Triangle"
	case WaveformPulse:
		return "Pulse"
	default:
		return fmt.Sprintf("Waveform(%d)", uint8(v))
	}
}

// ApplicationRequest tells a multizone device when to apply buffered
// zone changes.
type ApplicationRequest uint8

const (
	// ApplyRequestNoApply buffers the change without applying it.
	ApplyRequestNoApply ApplicationRequest = 0
	// ApplyRequestApply applies the change along with any buffered ones.
	ApplyRequestApply ApplicationRequest = 1
	// ApplyRequestApplyOnly applies buffered changes, ignoring the one
	// carried in this message.
	ApplyRequestApplyOnly ApplicationRequest = 2
)

func (a ApplicationRequest) String() string {
	switch a {
	case ApplyRequestNoApply:
		return "NoApply"
	case ApplyRequestApply:
		return "Apply"
	case ApplyRequestApplyOnly:
		return "ApplyOnly"
	default:
		return fmt.Sprintf("ApplicationRequest(%d)", uint8(a))
	}
}

// EffectType identifies a firmware multizone effect.
type EffectType uint8

const (
	EffectTypeOff  EffectType = 0
	EffectTypeMove EffectType = 1
)

func (e EffectType) String() string {
	switch e {
	case EffectTypeOff:
		return "Off"
	case EffectTypeMove:
		return "Move"
	default:
		return fmt.Sprintf("EffectType(%d)", uint8(e))
	}
}

// HevCycleResult reports how the last HEV cleaning cycle ended.
type HevCycleResult uint8

const (
	HevCycleResultSuccess          HevCycleResult = 0
	HevCycleResultBusy             HevCycleResult = 1
	HevCycleResultInterruptedReset HevCycleResult = 2
	HevCycleResultInterruptedHome  HevCycleResult = 3
	HevCycleResultInterruptedLAN   HevCycleResult = 4
	HevCycleResultNone             HevCycleResult = 255
)

func (h HevCycleResult) String() string {
	switch h {
	case HevCycleResultSuccess:
		return "Success"
	case HevCycleResultBusy:
		return "Busy"
	case HevCycleResultInterruptedReset:
		return "InterruptedByReset"
	case HevCycleResultInterruptedHome:
		return "InterruptedByHomekit"
	case HevCycleResultInterruptedLAN:
		return "InterruptedByLAN"
	case HevCycleResultNone:
		return "None"
	default:
		return fmt.Sprintf("HevCycleResult(%d)", uint8(h))
	}
}

// Power levels. The protocol carries power as a raw 16-bit level;
// devices only ever report fully off or fully on.
const (
	PowerOff uint16 = 0
	PowerOn  uint16 = 65535
)
