// Package observability wires OpenTelemetry tracing and metrics for the
// transcription pipeline. InitTracer and InitMeter install global providers
// exporting over OTLP HTTP; the rest of the module reaches them through
// StartSpan and PipelineMetrics.
package observability
