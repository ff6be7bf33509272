// Package telemetry wires the global OpenTelemetry tracer provider to
// Langfuse's OTLP endpoint. Spans opened by the HTTP middleware and the
// stats/plan services end up as Langfuse observations.
package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mkowalczyk/lullaby/internal/config"
)

// InitTracer installs the global tracer provider and returns its
// shutdown function. Without Langfuse credentials the default no-op
// provider stays in place and shutdown does nothing.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (func(context.Context) error, error) {
	if cfg.LangfuseBaseURL == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
		return func(context.Context) error { return nil }, nil
	}

	auth := base64.StdEncoding.EncodeToString(
		[]byte(cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey))
	endpoint := fmt.Sprintf("%s/api/public/otel/v1/traces",
		strings.TrimSuffix(cfg.LangfuseBaseURL, "/"))

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
