package cli

import (
	"context"
	"fmt"

	"github.com/skillsenselab/speechkit/config"
	"github.com/skillsenselab/speechkit/diarization"
	"github.com/skillsenselab/speechkit/diarization/pyannote"
	"github.com/skillsenselab/speechkit/observability"
	"github.com/skillsenselab/speechkit/pipeline"
	"github.com/skillsenselab/speechkit/provider"
	"github.com/skillsenselab/speechkit/transcription"
	"github.com/skillsenselab/speechkit/transcription/whisper"
	"github.com/skillsenselab/speechkit/version"
)

// app holds the wired components shared by the transcribe and serve commands.
type app struct {
	cfg          *config.Config
	diarizers    *provider.Manager[diarization.Provider]
	transcribers *provider.Manager[transcription.Provider]
	pipeline     *pipeline.Pipeline
	metrics      *observability.PipelineMetrics
	shutdown     []func(context.Context) error
}

// newApp builds provider managers and the pipeline from configuration.
// withTelemetry additionally installs the OTLP trace and metric exporters
// when observability is enabled.
func newApp(ctx context.Context, cfg *config.Config, withTelemetry bool) (*app, error) {
	a := &app{cfg: cfg}

	if withTelemetry && cfg.Observability.Enabled {
		if err := a.initTelemetry(ctx); err != nil {
			return nil, err
		}
	}

	a.diarizers = diarization.NewManager()
	a.diarizers.Register("pyannote", pyannote.Factory())
	if err := a.diarizers.Initialize(cfg.Diarization.Backend, cfg.Diarization.Options); err != nil {
		return nil, fmt.Errorf("diarization backend %q: %w", cfg.Diarization.Backend, err)
	}
	if err := a.diarizers.SetDefault(cfg.Diarization.Backend); err != nil {
		return nil, err
	}

	a.transcribers = transcription.NewManager()
	a.transcribers.Register("whisper", whisper.Factory())
	if err := a.transcribers.Initialize(cfg.Transcription.Backend, cfg.Transcription.Options); err != nil {
		return nil, fmt.Errorf("transcription backend %q: %w", cfg.Transcription.Backend, err)
	}
	if err := a.transcribers.SetDefault(cfg.Transcription.Backend); err != nil {
		return nil, err
	}

	a.pipeline = pipeline.New(a.diarizers, a.transcribers, pipeline.Options{
		IncludeWords:        cfg.Pipeline.IncludeWords,
		NumSpeakers:         cfg.Pipeline.NumSpeakers,
		ClusteringThreshold: cfg.Pipeline.ClusteringThreshold,
		Language:            cfg.Pipeline.Language,
	}, a.metrics)

	return a, nil
}

func (a *app) initTelemetry(ctx context.Context) error {
	obs := a.cfg.Observability

	tracerCfg := observability.DefaultTracerConfig(a.cfg.Base.Name)
	tracerCfg.ServiceVersion = version.Short()
	tracerCfg.Environment = a.cfg.Base.Environment
	tracerCfg.Endpoint = obs.Endpoint
	tracerCfg.Insecure = obs.Insecure
	tracerCfg.SampleRate = obs.SampleRate

	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	a.shutdown = append(a.shutdown, tp.Shutdown)

	meterCfg := observability.DefaultMeterConfig(a.cfg.Base.Name)
	meterCfg.ServiceVersion = tracerCfg.ServiceVersion
	meterCfg.Environment = tracerCfg.Environment
	meterCfg.Endpoint = obs.Endpoint
	meterCfg.Insecure = obs.Insecure

	mp, err := observability.InitMeter(ctx, &meterCfg)
	if err != nil {
		return fmt.Errorf("initializing meter: %w", err)
	}
	a.shutdown = append(a.shutdown, mp.Shutdown)

	metrics, err := observability.NewPipelineMetrics(observability.Meter(a.cfg.Base.Name))
	if err != nil {
		return fmt.Errorf("creating pipeline metrics: %w", err)
	}
	a.metrics = metrics
	return nil
}

// close flushes telemetry providers.
func (a *app) close(ctx context.Context) {
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		_ = a.shutdown[i](ctx)
	}
}
