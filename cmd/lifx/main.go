// Command lifx discovers and controls LIFX devices on the local
// network.
//
// Usage:
//
//	lifx [command]
//
// Commands:
//
//	discover    - Find devices and print what they report
//	watch       - Stream decoded packets as they arrive
//	on, off     - Switch devices
//	color       - Fade devices to a color
//	label       - Rename a device
//	shell       - Interactive command mode
//	trace       - Print packets recorded with --trace-file
//
// Devices are addressed by serial (d0:73:d5:02:97:de) or "all".
//
// Examples:
//
//	# List everything on the network
//	lifx discover
//
//	# Turn one bulb on, everything off
//	lifx on d0:73:d5:02:97:de
//	lifx off all
//
//	# Warm white at half brightness over two seconds
//	lifx color all --brightness 50 --kelvin 2700 --duration 2s
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/log"
	"github.com/lifxlan-protocol/lifxlan-go/pkg/transport"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagTrace     bool
	flagTraceFile string

	cfg       Config
	logger    *zap.Logger
	traceFile *log.FileLogger
)

func main() {
	root := &cobra.Command{
		Use:           "lifx",
		Short:         "Discover and control LIFX devices on the local network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = LoadConfig(flagConfig); err != nil {
				return err
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagTrace {
				cfg.Trace = true
			}
			if flagTraceFile != "" {
				cfg.TraceFile = flagTraceFile
			}
			if logger, err = newLogger(cfg.LogLevel); err != nil {
				return err
			}
			if cfg.TraceFile != "" {
				if traceFile, err = log.NewFileLogger(cfg.TraceFile); err != nil {
					return fmt.Errorf("open trace file: %w", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if traceFile != nil {
				_ = traceFile.Close()
			}
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file path")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "trace every packet on the wire")
	root.PersistentFlags().StringVar(&flagTraceFile, "trace-file", "", "record every packet to this file")

	root.AddCommand(
		newDiscoverCmd(),
		newWatchCmd(),
		newPowerCmd(true),
		newPowerCmd(false),
		newColorCmd(),
		newLabelCmd(),
		newShellCmd(),
		newTraceCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// transportConfig maps the file configuration onto the transport.
func transportConfig() transport.Config {
	tc := transport.Config{
		Port:          cfg.Port,
		Source:        cfg.Source,
		BroadcastAddr: cfg.Broadcast,
	}
	var sinks []log.Logger
	if cfg.Trace {
		sinks = append(sinks, &zapPacketLogger{logger: logger})
	}
	if traceFile != nil {
		sinks = append(sinks, traceFile)
	}
	tc.PacketLogger = log.NewMultiLogger(sinks...)
	return tc
}
