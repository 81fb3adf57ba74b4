package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"reflect"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

func newDiscoverCmd() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find devices and print what they report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			client, err := startClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := discoverWait(ctx, client); err != nil {
				return err
			}
			if details {
				// Second round: ask for labels, colors and the rest,
				// then give devices a moment to answer.
				for _, d := range client.Registry().Devices() {
					for _, q := range []wire.Message{
						wire.GetLabel{}, wire.GetColor{}, wire.GetVersion{},
						wire.GetGroup{}, wire.GetLocation{},
					} {
						if err := client.SendTo(d.Target, q); err != nil {
							return err
						}
					}
				}
				if err := discoverWait(ctx, client); err != nil {
					return err
				}
			}

			devices := client.Registry().Devices()
			if len(devices) == 0 {
				fmt.Println("No devices found.")
				return nil
			}
			for _, d := range devices {
				fmt.Println(formatDevice(d))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "query devices for labels, colors and firmware")
	return cmd
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream decoded packets as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			client, err := startClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			client.OnMessage(func(addr *net.UDPAddr, raw *wire.RawMessage, msg wire.Message) {
				fmt.Printf("%-15s %s seq=%-3d %s %+v\n",
					addr.IP, raw.FrameAddress.Target, raw.FrameAddress.Sequence,
					reflect.TypeOf(msg).Name(), msg)
			})

			if err := client.Discover(); err != nil {
				return err
			}
			<-ctx.Done()
			return nil
		},
	}
}
