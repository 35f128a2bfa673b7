package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("speechkit")
	if cfg.ServiceName != "speechkit" {
		t.Errorf("ServiceName = %s, want speechkit", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("Endpoint = %s, want localhost:4318", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure default true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("speechkit")
	if cfg.ServiceName != "speechkit" {
		t.Errorf("ServiceName = %s, want speechkit", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("Interval = %v, want 15s", cfg.Interval)
	}
}

func TestStartSpanWithoutProvider(t *testing.T) {
	// Without an installed provider spans are no-ops but must still be usable.
	ctx, span := StartSpan(context.Background(), SpanPipelineProcess)
	if span == nil {
		t.Fatal("expected a span")
	}
	SetSpanAttribute(ctx, AttrJobID, "job-1")
	SetSpanAttribute(ctx, AttrSpeakerCount, 2)
	SetSpanAttribute(ctx, AttrSegmentCount, int64(5))
	SetSpanError(ctx, errors.New("boom"))
	span.End()
}

func TestPipelineMetricsNoopMeter(t *testing.T) {
	m, err := NewPipelineMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("NewPipelineMetrics returned error: %v", err)
	}

	ctx := context.Background()
	m.RecordJobStart(ctx)
	m.RecordStage(ctx, "diarize", 250*time.Millisecond)
	m.RecordStage(ctx, "transcribe", 300*time.Millisecond)
	m.RecordError(ctx, "transcribe", "MODEL_FAILURE")
	m.RecordJobEnd(ctx, "error", time.Second)
}
