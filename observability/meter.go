package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metric names and attribute keys used by Metrics.
const (
	MetricErrorsReported = "cloud.errors.reported"
	MetricErrorsCaptured = "cloud.errors.captured"

	AttrOperation = "operation"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs an OTLP/HTTP meter provider as the global provider.
// The caller must Shutdown the returned provider on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics counts the errors that pass through the cloud error helpers.
// A nil *Metrics records nothing.
type Metrics struct {
	errorsReported metric.Int64Counter
	errorsCaptured metric.Int64Counter
}

// NewMetrics creates the error counters on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	errorsReported, err := meter.Int64Counter(MetricErrorsReported,
		metric.WithDescription("Errors reported as cloud errors, by kind and operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorsReported, err)
	}

	errorsCaptured, err := meter.Int64Counter(MetricErrorsCaptured,
		metric.WithDescription("Failures captured from provider work, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorsCaptured, err)
	}

	return &Metrics{
		errorsReported: errorsReported,
		errorsCaptured: errorsCaptured,
	}, nil
}

// RecordReported counts one error reported by operation.
func (m *Metrics) RecordReported(ctx context.Context, kind, operation string) {
	if m == nil {
		return
	}
	m.errorsReported.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorKind, kind),
		attribute.String(AttrOperation, operation),
	))
}

// RecordCaptured counts one captured failure.
func (m *Metrics) RecordCaptured(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.errorsCaptured.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorKind, kind),
	))
}
