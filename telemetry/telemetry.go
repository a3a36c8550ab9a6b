// Package telemetry wires OpenTelemetry tracing for the preflow command.
//
// When tracing is disabled Setup leaves the global no-op TracerProvider in
// place and returns a no-op shutdown function. When enabled it installs an
// sdk TracerProvider exporting over OTLP/HTTP in batches.
//
// Usage:
//
//	shutdown, err := telemetry.Setup(ctx, cfg.Tracing)
//	if err != nil {
//	    log.WithError(err).Warn("tracing disabled")
//	}
//	defer shutdown(ctx)
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/katalvlaran/preflow/config"
)

// ShutdownFunc flushes and stops the TracerProvider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error {
	return nil
}

// Version is reported as service.version; set by the command at link time.
var Version = "dev"

// Setup installs the global TracerProvider described by cfg.
func Setup(ctx context.Context, cfg config.TracingConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return noopShutdown, err
	}

	tp := NewProvider(cfg, sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// NewProvider builds a TracerProvider with the service resource and sampler
// of cfg plus any extra options (exporters, span processors).
func NewProvider(cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(buildResource(cfg)),
		sdktrace.WithSampler(sampler(cfg.SampleRatio)),
	}

	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// exporterOptions translates the endpoint URL into otlptracehttp options.
func exporterOptions(cfg config.TracingConfig) []otlptracehttp.Option {
	var opts []otlptracehttp.Option
	if endpoint := cfg.Endpoint; endpoint != "" {
		if strings.HasPrefix(endpoint, "https://") {
			endpoint = strings.TrimPrefix(endpoint, "https://")
		} else if strings.HasPrefix(endpoint, "http://") {
			endpoint = strings.TrimPrefix(endpoint, "http://")
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	return opts
}

func buildResource(cfg config.TracingConfig) *resource.Resource {
	return resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(Version),
	)
}

// sampler samples everything at ratio ≥ 1, nothing at ≤ 0, and otherwise by
// trace ID, always following the parent's decision.
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
