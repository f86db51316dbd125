package internal

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/shigaichi/dlq-monitor"

// InitTracing installs a global tracer provider. Exporter "none" (or empty)
// keeps the no-op provider. The returned function flushes pending spans.
func InitTracing(ctx context.Context, cfg TracingConfig) (func(context.Context) error, error) {
	exporterName := strings.ToLower(strings.TrimSpace(cfg.Exporter))
	if exporterName == "" || exporterName == "none" {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := buildExporter(ctx, exporterName, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("dlq-monitor"),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tracing resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

func buildExporter(ctx context.Context, exporterName, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporterName {
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, errors.Wrap(err, "failed to create stdout trace exporter")
		}
		return exp, nil
	case "otlp", "otlphttp", "http":
		if endpoint == "" {
			endpoint = "http://localhost:4318"
		}
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create otlp trace exporter")
		}
		return exp, nil
	default:
		return nil, errors.Newf("unknown tracing exporter %q", exporterName)
	}
}

// FlushTracing exports spans buffered by the global tracer provider. It is a
// no-op when tracing is disabled.
func FlushTracing(ctx context.Context) error {
	flusher, ok := otel.GetTracerProvider().(interface {
		ForceFlush(context.Context) error
	})
	if !ok {
		return nil
	}
	if err := flusher.ForceFlush(ctx); err != nil {
		return errors.Wrap(err, "failed to flush traces")
	}
	return nil
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}
