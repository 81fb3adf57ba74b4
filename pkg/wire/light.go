package wire

// Light messages control hue, brightness and related features of
// products with a light engine.

// GetColor asks for the current light state.
type GetColor struct{}

func (GetColor) Type() uint16          { return TypeGetColor }
func (GetColor) marshal(*Writer) error { return nil }

// SetColor fades the light to a color over a duration in
// milliseconds.
type SetColor struct {
	Color    HSBK
	Duration uint32
}

func (SetColor) Type() uint16 { return TypeSetColor }

func (m SetColor) marshal(w *Writer) error {
	w.PutZeros(1)
	w.PutHSBK(m.Color)
	w.PutUint32(m.Duration)
	return nil
}

func decodeSetColor(r *Reader) Message {
	r.Skip(1)
	return SetColor{Color: r.HSBK(), Duration: r.Uint32()}
}

// SetWaveform modulates the light between its current color and a
// target color following the selected waveform shape.
type SetWaveform struct {
	// Transient returns the light to its original color when the
	// cycles complete.
	Transient bool
	Color     HSBK
	// Period is the duration of one cycle in milliseconds.
	Period uint32
	Cycles float32
	// SkewRatio shifts the duty cycle of WaveformPulse.
	SkewRatio int16
	Waveform  Waveform
}

func (SetWaveform) Type() uint16 { return TypeSetWaveform }

func (m SetWaveform) marshal(w *Writer) error {
	w.PutZeros(1)
	w.PutBool(m.Transient)
	w.PutHSBK(m.Color)
	w.PutUint32(m.Period)
	w.PutFloat32(m.Cycles)
	w.PutInt16(m.SkewRatio)
	w.PutUint8(uint8(m.Waveform))
	return nil
}

func decodeSetWaveform(r *Reader) Message {
	r.Skip(1)
	return SetWaveform{
		Transient: r.Bool(),
		Color:     r.HSBK(),
		Period:    r.Uint32(),
		Cycles:    r.Float32(),
		SkewRatio: r.Int16(),
		Waveform:  Waveform(r.Uint8()),
	}
}

// SetWaveformOptional behaves like SetWaveform but only changes the
// color components whose Set flag is true.
type SetWaveformOptional struct {
	Transient     bool
	Color         HSBK
	Period        uint32
	Cycles        float32
	SkewRatio     int16
	Waveform      Waveform
	SetHue        bool
	SetSaturation bool
	SetBrightness bool
	SetKelvin     bool
}

func (SetWaveformOptional) Type() uint16 { return TypeSetWaveformOptional }

func (m SetWaveformOptional) marshal(w *Writer) error {
	w.PutZeros(1)
	w.PutBool(m.Transient)
	w.PutHSBK(m.Color)
	w.PutUint32(m.Period)
	w.PutFloat32(m.Cycles)
	w.PutInt16(m.SkewRatio)
	w.PutUint8(uint8(m.Waveform))
	w.PutBool(m.SetHue)
	w.PutBool(m.SetSaturation)
	w.PutBool(m.SetBrightness)
	w.PutBool(m.SetKelvin)
	return nil
}

func decodeSetWaveformOptional(r *Reader) Message {
	r.Skip(1)
	return SetWaveformOptional{
		Transient:     r.Bool(),
		Color:         r.HSBK(),
		Period:        r.Uint32(),
		Cycles:        r.Float32(),
		SkewRatio:     r.Int16(),
		Waveform:      Waveform(r.Uint8()),
		SetHue:        r.Bool(),
		SetSaturation: r.Bool(),
		SetBrightness: r.Bool(),
		SetKelvin:     r.Bool(),
	}
}

// LightState reports the current color, power level and label.
type LightState struct {
	Color HSBK
	Power uint16
	Label Label
}

func (LightState) Type() uint16 { return TypeLightState }

func (m LightState) marshal(w *Writer) error {
	w.PutHSBK(m.Color)
	w.PutZeros(2)
	w.PutUint16(m.Power)
	w.PutLabel(m.Label)
	w.PutZeros(8)
	return nil
}

func decodeLightState(r *Reader) Message {
	var m LightState
	m.Color = r.HSBK()
	r.Skip(2)
	m.Power = r.Uint16()
	m.Label = r.Label()
	r.Skip(8)
	return m
}

// GetLightPower asks for the light power level.
type GetLightPower struct{}

func (GetLightPower) Type() uint16          { return TypeGetLightPower }
func (GetLightPower) marshal(*Writer) error { return nil }

// SetLightPower fades the light power to a level over a duration in
// milliseconds.
type SetLightPower struct {
	Level    uint16
	Duration uint32
}

func (SetLightPower) Type() uint16 { return TypeSetLightPower }

func (m SetLightPower) marshal(w *Writer) error {
	w.PutUint16(m.Level)
	w.PutUint32(m.Duration)
	return nil
}

// StateLightPower reports the light power level.
type StateLightPower struct {
	Level uint16
}

func (StateLightPower) Type() uint16 { return TypeStateLightPower }

func (m StateLightPower) marshal(w *Writer) error {
	w.PutUint16(m.Level)
	return nil
}

// GetInfrared asks for the infrared brightness of products with an IR
// channel.
type GetInfrared struct{}

func (GetInfrared) Type() uint16          { return TypeGetInfrared }
func (GetInfrared) marshal(*Writer) error { return nil }

// StateInfrared reports the maximum infrared brightness.
type StateInfrared struct {
	Brightness uint16
}

func (StateInfrared) Type() uint16 { return TypeStateInfrared }

func (m StateInfrared) marshal(w *Writer) error {
	w.PutUint16(m.Brightness)
	return nil
}

// SetInfrared sets the maximum infrared brightness.
type SetInfrared struct {
	Brightness uint16
}

func (SetInfrared) Type() uint16 { return TypeSetInfrared }

func (m SetInfrared) marshal(w *Writer) error {
	w.PutUint16(m.Brightness)
	return nil
}

// GetHevCycle asks for the state of the HEV cleaning cycle.
type GetHevCycle struct{}

func (GetHevCycle) Type() uint16          { return TypeGetHevCycle }
func (GetHevCycle) marshal(*Writer) error { return nil }

// SetHevCycle starts or stops a HEV cleaning cycle. Duration is in
// seconds; zero uses the configured default.
type SetHevCycle struct {
	Enable   bool
	Duration uint32
}

func (SetHevCycle) Type() uint16 { return TypeSetHevCycle }

func (m SetHevCycle) marshal(w *Writer) error {
	w.PutBool(m.Enable)
	w.PutUint32(m.Duration)
	return nil
}

// StateHevCycle reports the running HEV cycle, durations in seconds.
type StateHevCycle struct {
	Duration  uint32
	Remaining uint32
	// LastPower records whether the light was on before the cycle
	// started.
	LastPower bool
}

func (StateHevCycle) Type() uint16 { return TypeStateHevCycle }

func (m StateHevCycle) marshal(w *Writer) error {
	w.PutUint32(m.Duration)
	w.PutUint32(m.Remaining)
	w.PutBool(m.LastPower)
	return nil
}

// GetHevCycleConfiguration asks for the default HEV cycle settings.
type GetHevCycleConfiguration struct{}

func (GetHevCycleConfiguration) Type() uint16          { return TypeGetHevCycleConfiguration }
func (GetHevCycleConfiguration) marshal(*Writer) error { return nil }

// SetHevCycleConfiguration changes the default HEV cycle settings.
type SetHevCycleConfiguration struct {
	// Indication runs a short feedback flash when a cycle completes.
	Indication bool
	Duration   uint32
}

func (SetHevCycleConfiguration) Type() uint16 { return TypeSetHevCycleConfiguration }

func (m SetHevCycleConfiguration) marshal(w *Writer) error {
	w.PutBool(m.Indication)
	w.PutUint32(m.Duration)
	return nil
}

// StateHevCycleConfiguration reports the default HEV cycle settings.
type StateHevCycleConfiguration struct {
	Indication bool
	Duration   uint32
}

func (StateHevCycleConfiguration) Type() uint16 { return TypeStateHevCycleConfiguration }

func (m StateHevCycleConfiguration) marshal(w *Writer) error {
	w.PutBool(m.Indication)
	w.PutUint32(m.Duration)
	return nil
}

// GetLastHevCycleResult asks how the last HEV cycle ended.
type GetLastHevCycleResult struct{}

func (GetLastHevCycleResult) Type() uint16          { return TypeGetLastHevCycleResult }
func (GetLastHevCycleResult) marshal(*Writer) error { return nil }

// StateLastHevCycleResult reports how the last HEV cycle ended.
type StateLastHevCycleResult struct {
	Result HevCycleResult
}

func (StateLastHevCycleResult) Type() uint16 { return TypeStateLastHevCycleResult }

func (m StateLastHevCycleResult) marshal(w *Writer) error {
	w.PutUint8(uint8(m.Result))
	return nil
}
