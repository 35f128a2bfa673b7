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

	"github.com/skillsenselab/speechkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
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

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
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

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// PipelineMetrics holds metric instruments for the transcription pipeline.
type PipelineMetrics struct {
	jobTotal      metric.Int64Counter
	jobDuration   metric.Float64Histogram
	jobActive     metric.Int64UpDownCounter
	stageDuration metric.Float64Histogram
	errorTotal    metric.Int64Counter
}

// NewPipelineMetrics creates the pipeline metric instruments on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	jobTotal, err := meter.Int64Counter("transcription.job.total",
		metric.WithDescription("Total number of transcription jobs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.job.total counter: %w", err)
	}

	jobDuration, err := meter.Float64Histogram("transcription.job.duration",
		metric.WithDescription("Wall-clock duration of transcription jobs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.job.duration histogram: %w", err)
	}

	jobActive, err := meter.Int64UpDownCounter("transcription.job.active",
		metric.WithDescription("Number of currently running transcription jobs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.job.active gauge: %w", err)
	}

	stageDuration, err := meter.Float64Histogram("transcription.stage.duration",
		metric.WithDescription("Duration of pipeline stages in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.stage.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("transcription.error.total",
		metric.WithDescription("Total pipeline errors by stage and code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.error.total counter: %w", err)
	}

	return &PipelineMetrics{
		jobTotal:      jobTotal,
		jobDuration:   jobDuration,
		jobActive:     jobActive,
		stageDuration: stageDuration,
		errorTotal:    errorTotal,
	}, nil
}

// RecordJobStart increments the active job count.
func (m *PipelineMetrics) RecordJobStart(ctx context.Context) {
	m.jobActive.Add(ctx, 1)
}

// RecordJobEnd decrements active jobs and records the completed job.
func (m *PipelineMetrics) RecordJobEnd(ctx context.Context, status string, duration time.Duration) {
	m.jobActive.Add(ctx, -1)
	m.jobTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
	m.jobDuration.Record(ctx, duration.Seconds())
}

// RecordStage records the duration of one pipeline stage.
func (m *PipelineMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration) {
	m.stageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

// RecordError records a pipeline error by stage and error code.
func (m *PipelineMetrics) RecordError(ctx context.Context, stage, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("code", code),
	))
}
