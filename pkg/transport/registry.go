package transport

import (
	"net"
	"sort"
	"sync"
	"time"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

// Device is the accumulated view of one device, built from the State
// messages it has sent. Pointer fields are nil until the matching
// State message has been seen.
type Device struct {
	Target   wire.Target
	Addr     *net.UDPAddr
	LastSeen time.Time

	// Port is the service port from StateService, normally 56700.
	Port uint32

	Label        wire.Label
	Power        *uint16
	Color        *wire.HSBK
	Zones        []wire.HSBK
	Infrared     *uint16
	Location     *wire.Membership
	Group        *wire.Membership
	Vendor       uint32
	Product      uint32
	HostFirmware *wire.Firmware
	WifiFirmware *wire.Firmware
}

// apply folds one State message into the device view. Messages that
// carry no device state are ignored.
func (d *Device) apply(msg wire.Message) {
	switch m := msg.(type) {
	case wire.StateService:
		if m.Service == wire.ServiceUDP {
			d.Port = m.Port
		}
	case wire.StateLabel:
		d.Label = m.Label
	case wire.StatePower:
		level := m.Level
		d.Power = &level
	case wire.StateLightPower:
		level := m.Level
		d.Power = &level
	case wire.LightState:
		color := m.Color
		power := m.Power
		d.Color = &color
		d.Power = &power
		d.Label = m.Label
	case wire.StateZone:
		if int(m.Count) != len(d.Zones) {
			d.Zones = make([]wire.HSBK, m.Count)
		}
		if int(m.Index) < len(d.Zones) {
			d.Zones[m.Index] = m.Color
		}
	case wire.StateMultiZone:
		d.Zones = append(d.Zones[:0], m.Colors...)
	case wire.StateInfrared:
		brightness := m.Brightness
		d.Infrared = &brightness
	case wire.StateLocation:
		membership := m.Membership
		d.Location = &membership
	case wire.StateGroup:
		membership := m.Membership
		d.Group = &membership
	case wire.StateVersion:
		d.Vendor = m.Vendor
		d.Product = m.Product
	case wire.StateHostFirmware:
		fw := m.Firmware
		d.HostFirmware = &fw
	case wire.StateWifiFirmware:
		fw := m.Firmware
		d.WifiFirmware = &fw
	}
}

// clone returns a deep copy safe to hand out.
func (d *Device) clone() *Device {
	c := *d
	if d.Addr != nil {
		addr := *d.Addr
		addr.IP = append(net.IP(nil), d.Addr.IP...)
		c.Addr = &addr
	}
	c.Zones = append([]wire.HSBK(nil), d.Zones...)
	copyPtr(&c.Power, d.Power)
	copyPtr(&c.Color, d.Color)
	copyPtr(&c.Infrared, d.Infrared)
	copyPtr(&c.Location, d.Location)
	copyPtr(&c.Group, d.Group)
	copyPtr(&c.HostFirmware, d.HostFirmware)
	copyPtr(&c.WifiFirmware, d.WifiFirmware)
	return &c
}

func copyPtr[T any](dst **T, src *T) {
	if src == nil {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

// Registry tracks the devices seen on the network, keyed by target.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	devices map[wire.Target]*Device
	now     func() time.Time
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[wire.Target]*Device),
		now:     time.Now,
	}
}

// Observe folds one received packet into the registry. Devices stamp
// their own serial into the frame address target of everything they
// send, so the target keys the entry. Broadcast-targeted packets, such
// as traffic from other clients, are ignored.
func (r *Registry) Observe(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message) {
	target := raw.FrameAddress.Target
	if target.IsAll() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[target]
	if !ok {
		d = &Device{Target: target, Port: DefaultPort}
		r.devices[target] = d
	}
	d.Addr = addr
	d.LastSeen = r.now()
	d.apply(msg)
}

// Get returns a copy of the device with the given target.
func (r *Registry) Get(target wire.Target) (*Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[target]
	if !ok {
		return nil, false
	}
	return d.clone(), true
}

// Devices returns copies of all known devices, ordered by target for
// stable output.
func (r *Registry) Devices() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Target.String() < out[j].Target.String()
	})
	return out
}

// Expire removes devices not seen within maxAge and returns how many
// were dropped.
func (r *Registry) Expire(maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for target, d := range r.devices {
		if d.LastSeen.Before(cutoff) {
			delete(r.devices, target)
			dropped++
		}
	}
	return dropped
}
