package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lifxlan-protocol/lifxlan-go/pkg/log"
)

// zapPacketLogger bridges packet trace events onto the operational zap
// logger.
type zapPacketLogger struct {
	logger *zap.Logger
}

func (l *zapPacketLogger) Log(event log.Event) {
	fields := []zap.Field{
		zap.String("direction", event.Direction.String()),
		zap.String("remote", event.RemoteAddr),
		zap.Int("size", event.Size),
	}
	if event.Target != "" {
		fields = append(fields,
			zap.String("target", event.Target),
			zap.Uint16("type", event.Type),
			zap.Uint8("seq", event.Sequence),
		)
	}
	if event.Err != "" {
		fields = append(fields, zap.String("error", event.Err))
		l.logger.Warn("packet", fields...)
		return
	}
	l.logger.Debug("packet", fields...)
}

var _ log.Logger = (*zapPacketLogger)(nil)

func newTraceCmd() *cobra.Command {
	var (
		target     string
		failedOnly bool
	)
	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Print packets recorded with --trace-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := log.Filter{Target: target, FailedOnly: failedOnly}
			reader, err := log.NewFilteredReader(args[0], filter)
			if err != nil {
				return err
			}
			defer reader.Close()

			for {
				event, err := reader.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("read trace: %w", err)
				}
				printTraceEvent(event)
			}
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "only packets for this target")
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "only packets that failed to decode")
	return cmd
}

func printTraceEvent(event log.Event) {
	line := fmt.Sprintf("%s %-3s %-21s %4dB",
		event.Timestamp.Format("15:04:05.000000"),
		event.Direction, event.RemoteAddr, event.Size)
	if event.Target != "" {
		line += fmt.Sprintf("  %s type=%d seq=%d", event.Target, event.Type, event.Sequence)
	}
	if event.Err != "" {
		line += "  error: " + event.Err
	}
	fmt.Println(line)
}
