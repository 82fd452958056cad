// Package trace wires OpenTelemetry tracing for the application.
package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EnvEndpoint enables export when set (host:port of an OTLP/HTTP collector).
	EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// EnvServiceName overrides DefaultServiceName.
	EnvServiceName = "OTEL_SERVICE_NAME"
	// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
	DefaultServiceName = "amphibians"
)

// Provider owns the SDK tracer provider installed as the otel global.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider as the global provider if
// OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled); the global
// no-op provider stays in place and Tracer still works.
func Setup(ctx context.Context, lookupEnv func(string) (string, bool)) (*Provider, error) {
	endpoint, ok := lookupEnv(EnvEndpoint)
	if !ok || endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors; TLS endpoints use OTEL_EXPORTER_OTLP_* env
	)
	if err != nil {
		return nil, err
	}

	serviceName, ok := lookupEnv(EnvServiceName)
	if !ok || serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Provider{provider: tp}, nil
}

// Tracer returns a named tracer from the current global provider.
func Tracer(name string) oteltrace.Tracer {
	return otel.Tracer(name)
}

// Shutdown flushes and closes the exporter. Safe on a nil Provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
