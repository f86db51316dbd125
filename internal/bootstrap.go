package internal

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// App holds the collaborators built from a Config.
type App struct {
	Config  Config
	Service *MonitorServiceImpl
	// Store is nil unless BootstrapOptions.NeedStore was set.
	Store SnapshotStore

	shutdownTracing func(context.Context) error
}

// BootstrapOptions says which optional collaborators to build.
type BootstrapOptions struct {
	NeedStore bool
	Printer   *ReportPrinter
}

// Bootstrap builds every client and component. Any failure here is fatal:
// it happens before scanning starts and names the missing prerequisite.
func Bootstrap(ctx context.Context, cfg Config, opts BootstrapOptions) (*App, error) {
	shutdownTracing, err := InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize tracing")
	}
	app := &App{Config: cfg, shutdownTracing: shutdownTracing}

	awsCfg, err := LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, app.abort(ctx, err)
	}
	if err := VerifyCredentials(ctx, cfg.AWS, awsCfg.Credentials, NewSTSClient(awsCfg)); err != nil {
		return nil, app.abort(ctx, err)
	}

	repo := NewSqsRepository(NewSQSClient(awsCfg, cfg.AWS.SQSEndpoint))
	scanner := NewScanner(repo, ScannerOptions{
		Concurrency:   cfg.Scan.Concurrency,
		FetchAttempts: cfg.Scan.FetchAttempts,
		RetryBackoff:  cfg.Scan.RetryBackoff,
	})

	var publisher Publisher
	if opts.NeedStore {
		store, err := OpenSnapshotStore(cfg.Store, awsCfg)
		if err != nil {
			return nil, app.abort(ctx, errors.Wrapf(err, "failed to initialize %s snapshot store", cfg.Store.Backend))
		}
		app.Store = store
		publisher = NewPublisher(store)
	}

	app.Service = NewMonitorService(scanner, publisher, cfg.QueueNames, awsCfg.Region)
	if cfg.Metrics.CloudWatchNamespace != "" {
		app.Service.WithEmitter(NewCloudWatchEmitter(NewCloudWatchClient(awsCfg), cfg.Metrics.CloudWatchNamespace, awsCfg.Region))
	}
	if opts.Printer != nil {
		app.Service.WithPrinter(opts.Printer)
	}

	slog.Debug("bootstrap complete",
		slog.String("region", awsCfg.Region),
		slog.String("store_backend", cfg.Store.Backend),
		slog.Int("queue_count", len(cfg.QueueNames)),
	)
	return app, nil
}

func (a *App) abort(ctx context.Context, err error) error {
	if closeErr := a.Close(ctx); closeErr != nil {
		slog.Warn("failed to release resources after bootstrap failure", slog.Any("error", closeErr))
	}
	return err
}

// Close releases the store and flushes traces.
func (a *App) Close(ctx context.Context) error {
	var errs error
	if a.Store != nil {
		errs = errors.CombineErrors(errs, a.Store.Close())
		a.Store = nil
	}
	if a.shutdownTracing != nil {
		errs = errors.CombineErrors(errs, a.shutdownTracing(ctx))
		a.shutdownTracing = nil
	}
	return errs
}
