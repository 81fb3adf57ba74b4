package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

var (
	testTarget = wire.Target{0xd0, 0x73, 0xd5, 0x02, 0x97, 0xde}
	testAddr   = &net.UDPAddr{IP: net.IPv4(10, 0, 0, 7), Port: DefaultPort}
)

// observe routes a message through the registry the way Serve would:
// wrapped in the frame a device response carries.
func observe(t *testing.T, r *Registry, msg wire.Message) {
	t.Helper()
	raw, err := wire.BuildRawMessage(wire.OptionsFor(testTarget), msg)
	require.NoError(t, err)
	r.Observe(testAddr, raw, msg)
}

func TestRegistryLearnsDevice(t *testing.T) {
	r := NewRegistry()
	observe(t, r, wire.StateService{Service: wire.ServiceUDP, Port: 56700})

	d, ok := r.Get(testTarget)
	require.True(t, ok)
	assert.Equal(t, testTarget, d.Target)
	assert.Equal(t, testAddr, d.Addr)
	assert.Equal(t, uint32(56700), d.Port)
	assert.False(t, d.LastSeen.IsZero())
}

func TestRegistryAccumulatesState(t *testing.T) {
	r := NewRegistry()
	observe(t, r, wire.StateService{Service: wire.ServiceUDP, Port: 56700})
	observe(t, r, wire.LightState{
		Color: wire.HSBK{Hue: 100, Kelvin: 3500},
		Power: wire.PowerOn,
		Label: "Desk",
	})
	observe(t, r, wire.StateVersion{Vendor: 1, Product: 32})
	observe(t, r, wire.StateGroup{Membership: wire.Membership{Label: "Office", UpdatedAt: 5}})
	observe(t, r, wire.StateHostFirmware{Firmware: wire.Firmware{VersionMajor: 3, VersionMinor: 70}})

	d, ok := r.Get(testTarget)
	require.True(t, ok)
	assert.Equal(t, wire.Label("Desk"), d.Label)
	require.NotNil(t, d.Power)
	assert.Equal(t, wire.PowerOn, *d.Power)
	require.NotNil(t, d.Color)
	assert.Equal(t, uint16(3500), d.Color.Kelvin)
	assert.Equal(t, uint32(32), d.Product)
	require.NotNil(t, d.Group)
	assert.Equal(t, wire.Label("Office"), d.Group.Label)
	require.NotNil(t, d.HostFirmware)
	assert.Equal(t, uint16(3), d.HostFirmware.VersionMajor)
}

func TestRegistryZoneState(t *testing.T) {
	r := NewRegistry()
	observe(t, r, wire.StateMultiZone{Colors: []wire.HSBK{{Hue: 1}, {Hue: 2}}})

	d, ok := r.Get(testTarget)
	require.True(t, ok)
	require.Len(t, d.Zones, 2)
	assert.Equal(t, uint16(2), d.Zones[1].Hue)

	observe(t, r, wire.StateZone{Count: 2, Index: 0, Color: wire.HSBK{Hue: 9}})
	d, _ = r.Get(testTarget)
	assert.Equal(t, uint16(9), d.Zones[0].Hue)
}

func TestRegistryIgnoresBroadcastTarget(t *testing.T) {
	r := NewRegistry()
	msg := wire.GetService{}
	raw, err := wire.BuildRawMessage(wire.OptionsFor(wire.AllDevices), msg)
	require.NoError(t, err)
	r.Observe(testAddr, raw, msg)

	assert.Empty(t, r.Devices())
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	observe(t, r, wire.LightState{Power: wire.PowerOn, Label: "Desk"})

	d, ok := r.Get(testTarget)
	require.True(t, ok)
	*d.Power = 0
	d.Label = "Scribbled"

	fresh, _ := r.Get(testTarget)
	assert.Equal(t, wire.PowerOn, *fresh.Power)
	assert.Equal(t, wire.Label("Desk"), fresh.Label)
}

func TestRegistryGetCopiesAddr(t *testing.T) {
	r := NewRegistry()
	observe(t, r, wire.StatePower{Level: wire.PowerOn})

	d, ok := r.Get(testTarget)
	require.True(t, ok)
	require.NotNil(t, d.Addr)
	d.Addr.Port = 1
	d.Addr.IP[0] = 99

	fresh, _ := r.Get(testTarget)
	assert.Equal(t, DefaultPort, fresh.Addr.Port)
	assert.Equal(t, testAddr.IP, fresh.Addr.IP)
}

func TestRegistryDevicesSorted(t *testing.T) {
	r := NewRegistry()
	for _, b := range []byte{3, 1, 2} {
		target := wire.Target{b, 0, 0, 0, 0, 0}
		raw, err := wire.BuildRawMessage(wire.OptionsFor(target), wire.StatePower{})
		require.NoError(t, err)
		r.Observe(testAddr, raw, wire.StatePower{})
	}
	devices := r.Devices()
	require.Len(t, devices, 3)
	assert.Equal(t, wire.Target{1, 0, 0, 0, 0, 0}, devices[0].Target)
	assert.Equal(t, wire.Target{3, 0, 0, 0, 0, 0}, devices[2].Target)
}

func TestRegistryExpire(t *testing.T) {
	r := NewRegistry()
	current := time.Unix(1000, 0)
	r.now = func() time.Time { return current }

	observe(t, r, wire.StatePower{})
	current = current.Add(2 * time.Minute)

	assert.Equal(t, 1, r.Expire(time.Minute))
	assert.Empty(t, r.Devices())
}
