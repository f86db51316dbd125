package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shigaichi/dlq-monitor/internal"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Scan on an interval, publish every snapshot and serve it over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "HTTP listen address")
	flags.Duration("interval", 0, "time between scans")
	_ = v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = v.BindPFlag("server.interval", flags.Lookup("interval"))

	return cmd
}

func runServe(ctx context.Context) error {
	app, err := internal.Bootstrap(ctx, cfg, internal.BootstrapOptions{NeedStore: true})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			slog.Error("failed to close resources", slog.Any("error", err))
		}
	}()

	router := internal.NewRouteImpl(internal.NewHandler(app.Store)).InitRoute()
	srv := internal.NewHTTPServer(cfg.Server.Addr, router)

	schedCtx, stopSchedule := context.WithCancel(ctx)
	scheduleDone := make(chan struct{})
	go func() {
		defer close(scheduleDone)
		internal.RunScheduled(schedCtx, app.Service, cfg.Server.Interval, cfg.Scan.Timeout, internal.CycleOptions{
			Publish: true,
			Source:  "server",
			Command: invocation(),
		})
	}()

	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("serving snapshots", slog.String("addr", cfg.Server.Addr))
		serverErrCh <- srv.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal; shutting down server")
	case err := <-serverErrCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = errors.Wrap(err, "failed to start server")
		}
	}

	stopSchedule()
	<-scheduleDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", slog.Any("error", err))
	}

	slog.Info("server stopped")
	return serveErr
}
