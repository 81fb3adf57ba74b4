package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/transport"
	"github.com/lifxlan-protocol/lifxlan-go/pkg/wire"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive command mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			client, err := startClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Discover(); err != nil {
				return err
			}

			sh, err := newShell(client)
			if err != nil {
				return err
			}
			sh.run(ctx, cancel)
			return nil
		},
	}
}

// shell is the interactive command loop.
type shell struct {
	client *transport.Client
	rl     *readline.Instance
}

func newShell(client *transport.Client) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lifx> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("list"),
			readline.PcItem("discover"),
			readline.PcItem("on"),
			readline.PcItem("off"),
			readline.PcItem("color"),
			readline.PcItem("label"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{client: client, rl: rl}, nil
}

func (s *shell) run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "discover":
			s.report(s.client.Discover())

		case "list", "ls", "devices":
			s.cmdList()

		case "on":
			s.cmdPower(args, true)

		case "off":
			s.cmdPower(args, false)

		case "color":
			s.cmdColor(args)

		case "label":
			s.cmdLabel(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
LIFX Commands:
  discover                              - Broadcast discovery again
  list                                  - List known devices
  on <target>                           - Switch on
  off <target>                          - Switch off
  color <target> <hue> <sat> <bri> [kelvin] [ms]
                                        - Fade to a color (degrees, %, %)
  label <target> <name>                 - Rename a device
  help                                  - Show this help
  quit                                  - Exit

  Targets are serials as printed by list, or "all".`)
}

func (s *shell) report(err error) {
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
	}
}

func (s *shell) cmdList() {
	devices := s.client.Registry().Devices()
	if len(devices) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No devices known yet. Try 'discover'.")
		return
	}
	for _, d := range devices {
		fmt.Fprintln(s.rl.Stdout(), formatDevice(d))
	}
}

func (s *shell) cmdPower(args []string, on bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: on|off <target>")
		return
	}
	target, err := wire.ParseTarget(args[0])
	if err != nil {
		s.report(err)
		return
	}
	s.report(s.client.SetPower(target, on))
}

func (s *shell) cmdColor(args []string) {
	if len(args) < 4 || len(args) > 6 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: color <target> <hue> <sat> <bri> [kelvin] [ms]")
		return
	}
	target, err := wire.ParseTarget(args[0])
	if err != nil {
		s.report(err)
		return
	}
	nums := make([]float64, 3)
	for i, arg := range args[1:4] {
		if nums[i], err = strconv.ParseFloat(arg, 64); err != nil {
			s.report(fmt.Errorf("bad number %q", arg))
			return
		}
	}
	kelvin := uint16(3500)
	if len(args) >= 5 {
		v, err := strconv.ParseUint(args[4], 10, 16)
		if err != nil {
			s.report(fmt.Errorf("bad kelvin %q", args[4]))
			return
		}
		kelvin = uint16(v)
	}
	var duration time.Duration
	if len(args) == 6 {
		ms, err := strconv.ParseUint(args[5], 10, 32)
		if err != nil {
			s.report(fmt.Errorf("bad duration %q", args[5]))
			return
		}
		duration = time.Duration(ms) * time.Millisecond
	}
	color, err := makeColor(nums[0], nums[1], nums[2], kelvin)
	if err != nil {
		s.report(err)
		return
	}
	s.report(s.client.SetColor(target, color, duration))
}

func (s *shell) cmdLabel(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: label <target> <name>")
		return
	}
	target, err := wire.ParseTarget(args[0])
	if err != nil {
		s.report(err)
		return
	}
	s.report(s.client.SetLabel(target, wire.Label(strings.Join(args[1:], " "))))
}
