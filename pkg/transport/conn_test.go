package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

type received struct {
	addr *net.UDPAddr
	raw  *wire.RawMessage
	msg  wire.Message
}

// channelHandler forwards transport events onto channels for test
// assertions.
type channelHandler struct {
	messages chan received
	errors   chan error
}

func newChannelHandler() *channelHandler {
	return &channelHandler{
		messages: make(chan received, 16),
		errors:   make(chan error, 16),
	}
}

func (h *channelHandler) OnMessage(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message) {
	h.messages <- received{addr: addr, raw: raw, msg: msg}
}

func (h *channelHandler) OnError(err error) {
	h.errors <- err
}

// startConn binds a Conn on loopback and serves it for the duration of
// the test.
func startConn(t *testing.T, handler Handler) *Conn {
	t.Helper()
	conn, err := NewConn(Config{}, handler)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go conn.Serve(ctx)
	return conn
}

func connAddr(t *testing.T, c *Conn) *net.UDPAddr {
	t.Helper()
	addr, ok := c.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: addr.Port}
}

func TestConnSendAndReceive(t *testing.T) {
	handler := newChannelHandler()
	receiver := startConn(t, handler)
	sender := startConn(t, newChannelHandler())

	target := wire.Target{1, 2, 3, 4, 5, 6}
	opts := sender.Options(target)
	opts.ResRequired = true
	err := sender.SendTo(connAddr(t, receiver), opts, wire.SetPower{Level: wire.PowerOn})
	require.NoError(t, err)

	select {
	case got := <-handler.messages:
		assert.Equal(t, wire.SetPower{Level: wire.PowerOn}, got.msg)
		assert.Equal(t, target, got.raw.FrameAddress.Target)
		assert.Equal(t, sender.Source(), got.raw.Frame.Source)
		assert.True(t, got.raw.FrameAddress.ResRequired)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestConnReportsUndecodablePackets(t *testing.T) {
	handler := newChannelHandler()
	receiver := startConn(t, handler)

	plain, err := net.DialUDP("udp4", nil, connAddr(t, receiver))
	require.NoError(t, err)
	defer plain.Close()
	_, err = plain.Write([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	select {
	case err := <-handler.errors:
		assert.ErrorIs(t, err, wire.ErrTruncated)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}

	// The loop must keep serving after a bad packet.
	sender := startConn(t, newChannelHandler())
	require.NoError(t, sender.SendTo(connAddr(t, receiver), sender.Options(wire.AllDevices), wire.GetService{}))
	select {
	case got := <-handler.messages:
		assert.Equal(t, wire.GetService{}, got.msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message after bad packet")
	}
}

func TestConnSequenceAdvances(t *testing.T) {
	conn, err := NewConn(Config{}, newChannelHandler())
	require.NoError(t, err)
	defer conn.Close()

	a := conn.NextSequence()
	b := conn.NextSequence()
	assert.NotEqual(t, a, b)

	opts := conn.Options(wire.AllDevices)
	assert.True(t, opts.Tagged)
	assert.Equal(t, conn.Source(), opts.Source)
}

func TestConnRandomSourceNonzero(t *testing.T) {
	conn, err := NewConn(Config{}, newChannelHandler())
	require.NoError(t, err)
	defer conn.Close()
	assert.NotZero(t, conn.Source())
}

func TestConnServeStopsOnCancel(t *testing.T) {
	conn, err := NewConn(Config{}, newChannelHandler())
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- conn.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not stop on cancel")
	}
}

func TestClientTracksDevices(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Serve(ctx)

	seen := make(chan wire.Message, 1)
	client.OnMessage(func(_ *net.UDPAddr, _ *wire.RawMessage, msg wire.Message) {
		seen <- msg
	})

	// Fake a device response: unicast carrying the client's source
	// with the device serial as target.
	device := startConn(t, newChannelHandler())
	clientAddr, ok := client.Conn().LocalAddr().(*net.UDPAddr)
	require.True(t, ok)
	dst := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: clientAddr.Port}

	target := wire.Target{9, 8, 7, 6, 5, 4}
	opts := wire.OptionsFor(target)
	opts.Source = client.Conn().Source()
	state := wire.StateService{Service: wire.ServiceUDP, Port: 56700}
	require.NoError(t, device.SendTo(dst, opts, state))

	select {
	case msg := <-seen:
		assert.Equal(t, state, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state message")
	}

	d, ok := client.Registry().Get(target)
	require.True(t, ok)
	assert.Equal(t, uint32(56700), d.Port)
}

func TestClientSendToUnknownDevice(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	defer client.Close()

	err = client.SendTo(wire.Target{1, 1, 1, 1, 1, 1}, wire.GetLabel{})
	assert.ErrorIs(t, err, ErrDeviceUnknown)
}
