package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/shigaichi/dlq-monitor/internal"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	var onlyWithMessages bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print every snapshot published to the shared store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, onlyWithMessages)
		},
	}
	cmd.Flags().BoolVar(&onlyWithMessages, "only-with-messages", false, "list only queues holding visible messages")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, onlyWithMessages bool) error {
	awsCfg, err := internal.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	store, err := internal.OpenSnapshotStore(cfg.Store, awsCfg)
	if err != nil {
		return errors.Wrapf(err, "failed to initialize %s snapshot store", cfg.Store.Backend)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close snapshot store", slog.Any("error", err))
		}
	}()

	printer := internal.NewReportPrinter(cmd.OutOrStdout(), noColor)
	events := make(chan internal.SnapshotEvent, 1)
	sub, err := store.Subscribe(ctx, internal.SnapshotKey, func(ev internal.SnapshotEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to snapshots")
	}
	defer sub.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev.Err != nil {
				slog.Warn("snapshot subscription error", slog.Any("error", ev.Err))
				continue
			}
			printer.PrintSnapshotLine(ev.Snapshot)
			if onlyWithMessages {
				for _, q := range ev.Snapshot.FilterWithMessages() {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %d messages\n", q.QueueName, q.MessagesVisible)
				}
			}
		}
	}
}
