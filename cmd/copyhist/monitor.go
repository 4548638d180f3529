package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/copyhist/internal/applock"
	"go.klb.dev/copyhist/internal/clip"
	"go.klb.dev/copyhist/internal/monitor"
)

func newMonitorCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Watch the clipboard and record every new text value",
		Long: `Polls the system clipboard on a fixed interval and stores each
distinct text value. Whatever is on the clipboard when monitoring starts is
treated as already present and never recorded.

Only one monitor may run per user; a second invocation exits immediately.
Stop with Ctrl+C or SIGTERM.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runMonitor(v) },
	}

	f := cmd.Flags()
	f.Duration("interval", monitor.DefaultInterval, "polling interval")
	addDBFlag(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runMonitor(v *viper.Viper) error {
	setupLogging(v)

	lock, err := applock.Acquire()
	if err != nil {
		if errors.Is(err, applock.ErrAlreadyRunning) {
			return err
		}
		return fmt.Errorf("single-instance lock: %w", err)
	}
	defer lock.Release()

	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := v.GetDuration("interval")
	m := monitor.New(clip.New(), st, interval)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
