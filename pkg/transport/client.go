package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

// ErrDeviceUnknown indicates an operation on a target the registry has
// never seen.
var ErrDeviceUnknown = errors.New("device unknown")

// MessageFunc observes every cleanly decoded packet after the registry
// has been updated.
type MessageFunc func(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message)

// ErrorFunc observes transport errors, including undecodable packets.
type ErrorFunc func(err error)

// Client is a LIFX LAN controller endpoint: a Conn plus a Registry and
// the usual control operations. Zero or more observers can watch the
// packet stream on top.
type Client struct {
	conn     *Conn
	registry *Registry

	mu        sync.RWMutex
	onMessage MessageFunc
	onError   ErrorFunc
}

// NewClient binds a socket per config and returns a Client ready to
// Serve.
func NewClient(config Config) (*Client, error) {
	c := &Client{registry: NewRegistry()}
	conn, err := NewConn(config, (*clientHandler)(c))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

// clientHandler keeps the Handler methods off the Client's public API.
type clientHandler Client

func (h *clientHandler) OnMessage(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message) {
	c := (*Client)(h)
	// Ignore traffic addressed to other clients. Our own requests
	// loop back on some networks; responses carry our source.
	if raw.Frame.Source != c.conn.Source() && !raw.Frame.Tagged {
		return
	}
	if raw.Frame.Source == c.conn.Source() && raw.FrameAddress.Target.IsAll() {
		// Our own broadcast echoed back.
		return
	}
	c.registry.Observe(addr, raw, msg)

	c.mu.RLock()
	fn := c.onMessage
	c.mu.RUnlock()
	if fn != nil {
		fn(addr, raw, msg)
	}
}

func (h *clientHandler) OnError(err error) {
	c := (*Client)(h)
	c.mu.RLock()
	fn := c.onError
	c.mu.RUnlock()
	if fn != nil {
		fn(err)
	}
}

// OnMessage installs the packet observer. Pass nil to remove it.
func (c *Client) OnMessage(fn MessageFunc) {
	c.mu.Lock()
	c.onMessage = fn
	c.mu.Unlock()
}

// OnError installs the error observer. Pass nil to remove it.
func (c *Client) OnError(fn ErrorFunc) {
	c.mu.Lock()
	c.onError = fn
	c.mu.Unlock()
}

// Registry returns the device registry.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Conn returns the underlying transport for direct sends.
func (c *Client) Conn() *Conn {
	return c.conn
}

// Serve dispatches incoming packets until ctx is canceled or the
// client is closed.
func (c *Client) Serve(ctx context.Context) error {
	return c.conn.Serve(ctx)
}

// Close closes the underlying socket.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Discover broadcasts GetService. Devices answer with StateService
// from their own address, populating the registry as responses arrive.
func (c *Client) Discover() error {
	return c.conn.Broadcast(wire.GetService{})
}

// RefreshInterval is the default period for Run's discovery loop.
const RefreshInterval = 30 * time.Second

// Run serves the client while rebroadcasting discovery and querying
// devices for missing details every interval. It returns when ctx is
// canceled.
func (c *Client) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = RefreshInterval
	}
	errCh := make(chan error, 1)
	go func() { errCh <- c.Serve(ctx) }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := c.Discover(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return <-errCh
		case err := <-errCh:
			return err
		case <-ticker.C:
			if err := c.Discover(); err != nil {
				return err
			}
			c.queryMissing()
		}
	}
}

// queryMissing asks known devices for details the registry lacks.
func (c *Client) queryMissing() {
	for _, d := range c.registry.Devices() {
		var queries []wire.Message
		if d.Label == "" {
			queries = append(queries, wire.GetLabel{})
		}
		if d.Power == nil {
			queries = append(queries, wire.GetPower{})
		}
		if d.Color == nil {
			queries = append(queries, wire.GetColor{})
		}
		if d.Vendor == 0 {
			queries = append(queries, wire.GetVersion{})
		}
		if d.Location == nil {
			queries = append(queries, wire.GetLocation{})
		}
		if d.Group == nil {
			queries = append(queries, wire.GetGroup{})
		}
		if d.HostFirmware == nil {
			queries = append(queries, wire.GetHostFirmware{})
		}
		for _, q := range queries {
			if err := c.SendTo(d.Target, q); err != nil {
				return
			}
		}
	}
}

// SendTo sends msg to the device with the given target, using the
// address the registry last saw it at.
func (c *Client) SendTo(target wire.Target, msg wire.Message) error {
	d, ok := c.registry.Get(target)
	if !ok || d.Addr == nil {
		return fmt.Errorf("%w: %s", ErrDeviceUnknown, target)
	}
	return c.conn.SendTo(d.Addr, c.conn.Options(target), msg)
}

// SetPower switches a device fully on or off. The broadcast target
// switches every device.
func (c *Client) SetPower(target wire.Target, on bool) error {
	level := wire.PowerOff
	if on {
		level = wire.PowerOn
	}
	msg := wire.SetPower{Level: level}
	if target.IsAll() {
		return c.conn.Broadcast(msg)
	}
	return c.SendTo(target, msg)
}

// SetColor fades a device to a color over a duration. The broadcast
// target fades every device.
func (c *Client) SetColor(target wire.Target, color wire.HSBK, duration time.Duration) error {
	msg := wire.SetColor{Color: color, Duration: uint32(duration.Milliseconds())}
	if target.IsAll() {
		return c.conn.Broadcast(msg)
	}
	return c.SendTo(target, msg)
}

// SetLabel renames a device.
func (c *Client) SetLabel(target wire.Target, label wire.Label) error {
	return c.SendTo(target, wire.SetLabel{Label: label})
}

// Echo sends an EchoRequest as a liveness probe.
func (c *Client) Echo(target wire.Target, payload wire.EchoPayload) error {
	return c.SendTo(target, wire.EchoRequest{Payload: payload})
}
