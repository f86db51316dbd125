package internal

import (
	"context"
	"log/slog"
	"time"
)

// RunScheduled runs a cycle immediately and then every interval until ctx is
// done. Each cycle gets at most cycleTimeout; failed cycles are logged and the
// schedule continues.
func RunScheduled(ctx context.Context, svc MonitorService, interval, cycleTimeout time.Duration, opts CycleOptions) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		runOnce(ctx, svc, cycleTimeout, opts)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
		}
	}
}

func runOnce(ctx context.Context, svc MonitorService, cycleTimeout time.Duration, opts CycleOptions) {
	cycleCtx := ctx
	if cycleTimeout > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(ctx, cycleTimeout)
		defer cancel()
	}

	result, err := svc.RunCycle(cycleCtx, opts)
	if err != nil {
		slog.Error("monitoring cycle failed", slog.String("scan_id", result.ScanID), slog.Any("error", err))
		return
	}
	slog.Info("monitoring cycle completed",
		slog.String("scan_id", result.ScanID),
		slog.Int("active_queues", result.Summary.ActiveQueues),
		slog.Int("error_queues", result.Summary.ErrorQueues),
		slog.Int64("total_messages", result.Summary.TotalMessages),
	)
}
