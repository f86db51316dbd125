package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type Route interface {
	InitRoute() http.Handler
}

type RouteImpl struct {
	h Handler
}

func NewRouteImpl(h Handler) *RouteImpl {
	return &RouteImpl{h: h}
}

func (i RouteImpl) InitRoute() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /snapshot", i.h.SnapshotHandler)
	mux.HandleFunc("GET /snapshot/events", i.h.SnapshotEventsHandler)
	mux.HandleFunc("GET /healthz", i.h.HealthHandler)

	return logMiddleware(mux)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// NewHTTPServer builds the server for the snapshot routes. Request contexts
// are cancelled as soon as Shutdown starts, which ends open event streams
// instead of waiting for them to drain.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Minute,
		ReadTimeout:       1 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}
