package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/transport"
	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

func newPowerCmd(on bool) *cobra.Command {
	use, short := "off", "Switch devices off"
	if on {
		use, short = "on", "Switch devices on"
	}
	return &cobra.Command{
		Use:   use + " <target>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd.Context(), args[0], func(ctx context.Context, c clientTarget) error {
				return c.client.SetPower(c.target, on)
			})
		},
	}
}

func newColorCmd() *cobra.Command {
	var (
		hue        float64
		saturation float64
		brightness float64
		kelvin     uint16
		duration   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "color <target>",
		Short: "Fade devices to a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := makeColor(hue, saturation, brightness, kelvin)
			if err != nil {
				return err
			}
			return withTarget(cmd.Context(), args[0], func(ctx context.Context, c clientTarget) error {
				return c.client.SetColor(c.target, color, duration)
			})
		},
	}
	cmd.Flags().Float64Var(&hue, "hue", 0, "hue in degrees (0-360)")
	cmd.Flags().Float64Var(&saturation, "saturation", 0, "saturation in percent (0-100)")
	cmd.Flags().Float64Var(&brightness, "brightness", 100, "brightness in percent (0-100)")
	cmd.Flags().Uint16Var(&kelvin, "kelvin", 3500, "color temperature in kelvin")
	cmd.Flags().DurationVar(&duration, "duration", 0, "fade duration")
	return cmd
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <target> <name>",
		Short: "Rename a device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd.Context(), args[0], func(ctx context.Context, c clientTarget) error {
				return c.client.SetLabel(c.target, wire.Label(args[1]))
			})
		},
	}
}

type clientTarget struct {
	client *transport.Client
	target wire.Target
}

// withTarget runs fn against a freshly started client with the parsed
// and resolved target.
func withTarget(parent context.Context, arg string, fn func(context.Context, clientTarget) error) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	client, err := startClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	target, err := resolveTarget(ctx, client, arg)
	if err != nil {
		return err
	}
	if err := fn(ctx, clientTarget{client: client, target: target}); err != nil {
		return err
	}
	// Give the outgoing datagram a beat to leave before the socket
	// closes.
	time.Sleep(100 * time.Millisecond)
	return nil
}

// makeColor converts human units to the packed 16-bit ranges.
func makeColor(hue, saturation, brightness float64, kelvin uint16) (wire.HSBK, error) {
	if hue < 0 || hue > 360 {
		return wire.HSBK{}, fmt.Errorf("hue %v out of range [0, 360]", hue)
	}
	if saturation < 0 || saturation > 100 {
		return wire.HSBK{}, fmt.Errorf("saturation %v out of range [0, 100]", saturation)
	}
	if brightness < 0 || brightness > 100 {
		return wire.HSBK{}, fmt.Errorf("brightness %v out of range [0, 100]", brightness)
	}
	return wire.HSBK{
		Hue:        uint16(hue / 360 * 65535),
		Saturation: uint16(saturation / 100 * 65535),
		Brightness: uint16(brightness / 100 * 65535),
		Kelvin:     kelvin,
	}, nil
}
