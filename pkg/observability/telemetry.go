package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// Telemetry is the logger, tracer and meter of one run.
type Telemetry struct {
	Logger *slog.Logger
	Tracer trace.Tracer
	Meter  metric.Meter

	flushers []func(context.Context) error
}

// Setup builds the telemetry for a run. Without cfg.Endpoint the tracer and
// meter are no-ops and nothing is exported.
func Setup(ctx context.Context, cfg Config) (*Telemetry, error) {
	tel := &Telemetry{Logger: NewLogger(cfg)}

	if cfg.Endpoint == "" {
		tel.Tracer = nooptrace.NewTracerProvider().Tracer(instrumentationName)
		tel.Meter = noopmetric.NewMeterProvider().Meter(instrumentationName)

		return tel, nil
	}

	res := runResource(cfg)

	traceExporter, err := otlptracegrpc.New(ctx, traceExportOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	metricExporter, err := otlpmetricgrpc.New(ctx, metricExportOptions(cfg)...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create metric exporter: %w", err), tp.Shutdown(ctx))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	tel.Tracer = tp.Tracer(instrumentationName)
	tel.Meter = mp.Meter(instrumentationName)
	tel.flushers = []func(context.Context) error{tp.Shutdown, mp.Shutdown}

	return tel, nil
}

// Close flushes pending spans and metrics, waiting at most flushTimeout.
// Later calls do nothing.
func (t *Telemetry) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()

	errs := make([]error, 0, len(t.flushers))
	for _, flush := range t.flushers {
		errs = append(errs, flush(ctx))
	}

	t.flushers = nil

	return errors.Join(errs...)
}

func runResource(cfg Config) *resource.Resource {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}

	if cfg.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.Version))
	}

	if cfg.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(cfg.Environment))
	}

	return resource.NewSchemaless(attrs...)
}

func traceExportOptions(cfg Config) []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}

	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	if len(cfg.Headers) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(cfg.Headers))
	}

	return opts
}

func metricExportOptions(cfg Config) []otlpmetricgrpc.Option {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}

	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	if len(cfg.Headers) > 0 {
		opts = append(opts, otlpmetricgrpc.WithHeaders(cfg.Headers))
	}

	return opts
}
