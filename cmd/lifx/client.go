package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/transport"
	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

// startClient binds a transport client and serves it until ctx ends.
func startClient(ctx context.Context) (*transport.Client, error) {
	client, err := transport.NewClient(transportConfig())
	if err != nil {
		return nil, err
	}
	client.OnError(func(err error) {
		logger.Warn("transport", zap.Error(err))
	})
	go func() {
		if err := client.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, transport.ErrClosed) {
			logger.Error("serve", zap.Error(err))
		}
	}()
	return client, nil
}

// discoverWait broadcasts discovery and gives devices time to answer.
func discoverWait(ctx context.Context, client *transport.Client) error {
	if err := client.Discover(); err != nil {
		return fmt.Errorf("discovery broadcast: %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(cfg.DiscoverWait):
		return nil
	}
}

// resolveTarget parses a target argument and, for device serials,
// makes sure discovery has found the device.
func resolveTarget(ctx context.Context, client *transport.Client, arg string) (wire.Target, error) {
	target, err := wire.ParseTarget(arg)
	if err != nil {
		return wire.Target{}, err
	}
	if target.IsAll() {
		return target, nil
	}
	if _, ok := client.Registry().Get(target); ok {
		return target, nil
	}
	if err := discoverWait(ctx, client); err != nil {
		return wire.Target{}, err
	}
	if _, ok := client.Registry().Get(target); !ok {
		return wire.Target{}, fmt.Errorf("device %s did not answer discovery", target)
	}
	return target, nil
}

// formatDevice renders one registry entry for listings.
func formatDevice(d *transport.Device) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-20s", d.Target, displayLabel(d.Label))
	if d.Addr != nil {
		fmt.Fprintf(&b, "  %s", d.Addr.IP)
	}
	if d.Power != nil {
		if *d.Power > 0 {
			b.WriteString("  on")
		} else {
			b.WriteString("  off")
		}
	}
	if d.Color != nil {
		fmt.Fprintf(&b, "  hue=%d sat=%d bri=%d kelvin=%d",
			d.Color.Hue, d.Color.Saturation, d.Color.Brightness, d.Color.Kelvin)
	}
	if d.Group != nil && d.Group.Label != "" {
		fmt.Fprintf(&b, "  group=%s", d.Group.Label)
	}
	if len(d.Zones) > 0 {
		fmt.Fprintf(&b, "  zones=%d", len(d.Zones))
	}
	return b.String()
}

func displayLabel(l wire.Label) string {
	if l == "" {
		return "(unnamed)"
	}
	return string(l)
}
