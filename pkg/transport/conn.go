package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/log"
	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

// DefaultPort is the UDP port LIFX devices listen on.
const DefaultPort = 56700

// DefaultBroadcastAddr reaches all devices on the local network.
const DefaultBroadcastAddr = "255.255.255.255:56700"

// Transport errors.
var (
	ErrClosed = errors.New("transport closed")
)

// Config configures a Conn.
type Config struct {
	// Port is the local UDP port to bind. Zero picks an ephemeral
	// port, which is what clients normally want; devices answer to
	// the sending port.
	Port int

	// Source is the client identifier stamped into outgoing frames
	// and echoed back by devices. Zero picks a random nonzero value.
	Source uint32

	// BroadcastAddr overrides DefaultBroadcastAddr, mainly for tests.
	BroadcastAddr string

	// PacketLogger receives a trace event per packet in either
	// direction. Nil disables tracing.
	PacketLogger log.Logger
}

// Handler handles transport events.
type Handler interface {
	// OnMessage is called for every packet that decoded cleanly.
	OnMessage(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message)

	// OnError is called for packets that failed to decode and for
	// socket errors. The read loop keeps running afterwards.
	OnError(err error)
}

// Conn is a UDP endpoint speaking the LIFX LAN protocol. One Conn
// serves any number of devices; UDP has no per-device connection
// state. Methods are safe for concurrent use.
type Conn struct {
	handler   Handler
	sock      *net.UDPConn
	broadcast *net.UDPAddr
	logger    log.Logger
	source    uint32

	seq       atomic.Uint32
	closeOnce sync.Once
	closeErr  error
}

// NewConn binds a UDP socket per config. The caller must run Serve to
// start dispatching incoming packets.
func NewConn(config Config, handler Handler) (*Conn, error) {
	if config.BroadcastAddr == "" {
		config.BroadcastAddr = DefaultBroadcastAddr
	}
	broadcast, err := net.ResolveUDPAddr("udp4", config.BroadcastAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve broadcast address: %w", err)
	}
	sock, err := net.ListenUDP("udp4", &net.UDPAddr{Port: config.Port})
	if err != nil {
		return nil, fmt.Errorf("bind UDP port %d: %w", config.Port, err)
	}

	source := config.Source
	for source == 0 {
		u := uuid.New()
		source = binary.LittleEndian.Uint32(u[:4])
	}

	logger := config.PacketLogger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	return &Conn{
		handler:   handler,
		sock:      sock,
		broadcast: broadcast,
		logger:    logger,
		source:    source,
	}, nil
}

// Source returns the client identifier stamped into outgoing frames.
func (c *Conn) Source() uint32 {
	return c.source
}

// LocalAddr returns the bound UDP address.
func (c *Conn) LocalAddr() net.Addr {
	return c.sock.LocalAddr()
}

// NextSequence returns a fresh sequence number. Sequence numbers wrap
// at 255; correlation only needs them distinct within the outstanding
// window.
func (c *Conn) NextSequence() uint8 {
	return uint8(c.seq.Add(1))
}

// Options returns BuildOptions for target with this Conn's source and
// a fresh sequence number.
func (c *Conn) Options(target wire.Target) wire.BuildOptions {
	opts := wire.OptionsFor(target)
	opts.Source = c.source
	opts.Sequence = c.NextSequence()
	return opts
}

// SendTo encodes msg with opts and sends it to addr.
func (c *Conn) SendTo(addr *net.UDPAddr, opts wire.BuildOptions, msg wire.Message) error {
	buf, err := wire.EncodeMessage(opts, msg)
	if err != nil {
		return fmt.Errorf("encode message type %d: %w", msg.Type(), err)
	}

	event := log.Event{
		Timestamp:  time.Now(),
		Direction:  log.DirectionOut,
		RemoteAddr: addr.String(),
		Target:     opts.Target.String(),
		Type:       msg.Type(),
		Sequence:   opts.Sequence,
	}
	event.Capture(buf)
	c.logger.Log(event)

	if _, err := c.sock.WriteToUDP(buf, addr); err != nil {
		return fmt.Errorf("send to %s: %w", addr, err)
	}
	return nil
}

// Broadcast sends msg as a tagged broadcast to all devices.
func (c *Conn) Broadcast(msg wire.Message) error {
	return c.SendTo(c.broadcast, c.Options(wire.AllDevices), msg)
}

// Serve reads and dispatches packets until ctx is canceled or the
// Conn is closed. Undecodable packets are traced and reported through
// the handler without stopping the loop.
func (c *Conn) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		c.sock.SetReadDeadline(time.Now())
	})
	defer stop()

	buf := make([]byte, wire.MaxPacketSize)
	for {
		n, addr, err := c.sock.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return ErrClosed
			}
			return fmt.Errorf("read: %w", err)
		}
		packet := buf[:n]

		event := log.Event{
			Timestamp:  time.Now(),
			Direction:  log.DirectionIn,
			RemoteAddr: addr.String(),
		}
		event.Capture(packet)

		raw, msg, err := wire.DecodeMessage(packet)
		if err != nil {
			event.Err = err.Error()
			c.logger.Log(event)
			c.handler.OnError(fmt.Errorf("packet from %s: %w", addr, err))
			continue
		}

		event.Target = raw.FrameAddress.Target.String()
		event.Type = raw.ProtocolHeader.Type
		event.Sequence = raw.FrameAddress.Sequence
		c.logger.Log(event)

		c.handler.OnMessage(addr, raw, msg)
	}
}

// Close closes the socket. Serve returns once the socket is closed.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.sock.Close()
	})
	return c.closeErr
}
