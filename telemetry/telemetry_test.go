package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/katalvlaran/preflow/config"
)

func TestSetup_Disabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetup_EnabledInstallsProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	cfg := config.TracingConfig{
		Enabled:     true,
		Endpoint:    "http://127.0.0.1:1",
		ServiceName: "preflow-test",
		SampleRatio: 1,
	}
	shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	// Nothing was recorded, so shutdown does not need the collector.
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProvider_ResourceAndSampling(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := NewProvider(config.TracingConfig{ServiceName: "svc", SampleRatio: 1},
		sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	attrs := ended[0].Resource().Attributes()
	assert.Contains(t, attrs, semconv.ServiceName("svc"))
	assert.Contains(t, attrs, semconv.ServiceVersion(Version))
}

func TestNewProvider_NeverSample(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := NewProvider(config.TracingConfig{ServiceName: "svc", SampleRatio: 0},
		sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.Empty(t, rec.Ended())
}

func TestExporterOptions(t *testing.T) {
	assert.Empty(t, exporterOptions(config.TracingConfig{}))
	assert.Len(t, exporterOptions(config.TracingConfig{Endpoint: "https://c:4318"}), 1)
	assert.Len(t, exporterOptions(config.TracingConfig{Endpoint: "http://c:4318"}), 2)
	assert.Len(t, exporterOptions(config.TracingConfig{Endpoint: "c:4318", Insecure: true}), 2)
}
