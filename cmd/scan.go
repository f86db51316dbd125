package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shigaichi/dlq-monitor/internal"
	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the configured dead letter queues once",
		Long: `Scan checks every configured queue, prints a report and exits 0 once the
scan completed, even when some queues are missing or unreadable. With
--publish the snapshot is written to the configured store; a failed write
exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), cmd, publish)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&publish, "publish", "f", false, "publish the snapshot to the shared store")
	flags.Int("concurrency", 0, "number of queues checked at once")
	flags.Duration("timeout", 0, "deadline for the whole scan; unchecked queues are reported as errors")
	_ = v.BindPFlag("scan.concurrency", flags.Lookup("concurrency"))
	_ = v.BindPFlag("scan.timeout", flags.Lookup("timeout"))

	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, publish bool) error {
	printer := internal.NewReportPrinter(cmd.OutOrStdout(), noColor)
	app, err := internal.Bootstrap(ctx, cfg, internal.BootstrapOptions{NeedStore: publish, Printer: printer})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			slog.Warn("failed to close resources", slog.Any("error", err))
		}
	}()

	scanCtx := ctx
	if cfg.Scan.Timeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, cfg.Scan.Timeout)
		defer cancel()
	}

	result, err := app.Service.RunCycle(scanCtx, internal.CycleOptions{
		Publish: publish,
		Source:  "cli",
		Command: invocation(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Ack != nil {
		fmt.Fprintf(out, "\nResults stored under %s at %s\n", result.Ack.Key, result.Ack.CapturedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(out, "\nMonitoring completed successfully!")
	return nil
}
