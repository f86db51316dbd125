package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shigaichi/dlq-monitor/internal"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	cfg, err := internal.LoadConfig(viper.New(), os.Getenv("DLQ_MONITOR_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: internal.ParseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	app, err := internal.Bootstrap(ctx, cfg, internal.BootstrapOptions{NeedStore: true})
	if err != nil {
		slog.Error("failed to initialize dlq monitor", slog.Any("error", err))
		os.Exit(1)
	}

	lambda.StartWithOptions(
		newHandler(app.Service, internal.FlushTracing),
		lambda.WithEnableSIGTERM(func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := app.Close(closeCtx); err != nil {
				slog.Warn("failed to close resources", slog.Any("error", err))
			}
		}),
	)
}

// newHandler runs one publishing cycle per scheduled EventBridge event and
// flushes its spans before the execution environment is frozen. Only a
// publish failure fails the invocation.
func newHandler(svc internal.MonitorService, flush func(context.Context) error) func(context.Context, events.CloudWatchEvent) error {
	return func(ctx context.Context, event events.CloudWatchEvent) error {
		defer func() {
			if err := flush(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("failed to flush traces", slog.String("event_id", event.ID), slog.Any("error", err))
			}
		}()

		result, err := svc.RunCycle(ctx, internal.CycleOptions{
			Publish: true,
			Source:  "lambda",
			Command: event.DetailType + " " + event.ID,
		})
		if err != nil {
			slog.Error("monitoring cycle failed", slog.String("event_id", event.ID), slog.Any("error", err))
			return err
		}
		slog.Info("monitoring cycle completed",
			slog.String("event_id", event.ID),
			slog.String("scan_id", result.ScanID),
			slog.Int("active_queues", result.Summary.ActiveQueues),
			slog.Int("error_queues", result.Summary.ErrorQueues),
		)
		return nil
	}
}
