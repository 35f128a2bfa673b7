package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/speechkit/diarization"
	apperrors "github.com/skillsenselab/speechkit/errors"
	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/observability"
	"github.com/skillsenselab/speechkit/provider"
	"github.com/skillsenselab/speechkit/transcript"
	"github.com/skillsenselab/speechkit/transcription"
	"github.com/skillsenselab/speechkit/validation"
)

// Options holds pipeline-level defaults applied to every job unless the
// request overrides them.
type Options struct {
	// IncludeWords emits per-word timing on every segment.
	IncludeWords bool
	// NumSpeakers is the exact speaker count hint (0 = auto-detect).
	NumSpeakers int
	// ClusteringThreshold tunes diarization speaker clustering.
	ClusteringThreshold float64
	// Language is the expected audio language (e.g. "en").
	Language string
	// Model is the transcription model to request.
	Model string
}

// Request describes one transcription job.
type Request struct {
	// AudioPath is the path to the audio file on local disk.
	AudioPath string `json:"audio_path" validate:"required"`
	// DisplayName overrides the file name reported in metadata. Defaults
	// to the base name of AudioPath.
	DisplayName string `json:"display_name,omitempty"`
	// NumSpeakers overrides the pipeline default when > 0.
	NumSpeakers int `json:"num_speakers,omitempty" validate:"gte=0"`
	// ClusteringThreshold overrides the pipeline default when > 0.
	ClusteringThreshold float64 `json:"clustering_threshold,omitempty" validate:"gte=0,lte=1"`
	// Language overrides the pipeline default when non-empty.
	Language string `json:"language,omitempty"`
	// IncludeWords overrides the pipeline default when non-nil.
	IncludeWords *bool `json:"include_words,omitempty"`
}

// Pipeline runs diarization and transcription and merges the results.
type Pipeline struct {
	diarizers    *provider.Manager[diarization.Provider]
	transcribers *provider.Manager[transcription.Provider]
	opts         Options
	metrics      *observability.PipelineMetrics
	log          *logger.Logger
}

// New creates a Pipeline over the given provider managers. metrics may be
// nil when metric export is not configured.
func New(diarizers *provider.Manager[diarization.Provider], transcribers *provider.Manager[transcription.Provider], opts Options, metrics *observability.PipelineMetrics) *Pipeline {
	return &Pipeline{
		diarizers:    diarizers,
		transcribers: transcribers,
		opts:         opts,
		metrics:      metrics,
		log:          logger.Get("pipeline"),
	}
}

// stageResult carries the outcome of one concurrent stage.
type stageResult[T any] struct {
	value    T
	duration time.Duration
	err      error
}

// Process runs one job end to end and returns the transcript document.
func (p *Pipeline) Process(ctx context.Context, req Request) (*transcript.Document, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, apperrors.InvalidAudio(req.AudioPath, err)
	}

	jobID := uuid.New().String()
	displayName := req.DisplayName
	if displayName == "" {
		displayName = filepath.Base(req.AudioPath)
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineProcess)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrJobID, jobID)
	observability.SetSpanAttribute(ctx, observability.AttrAudioFile, displayName)

	if p.metrics != nil {
		p.metrics.RecordJobStart(ctx)
	}
	start := time.Now()

	p.log.Info("job started", map[string]interface{}{
		logger.FieldJobID:     jobID,
		logger.FieldAudioFile: displayName,
	})

	doc, err := p.process(ctx, jobID, displayName, req, start)

	if p.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		p.metrics.RecordJobEnd(ctx, status, time.Since(start))
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
		p.log.Error("job failed", map[string]interface{}{
			logger.FieldJobID: jobID,
			"error":           err.Error(),
		})
		return nil, err
	}

	p.log.Info("job completed", map[string]interface{}{
		logger.FieldJobID:    jobID,
		"segments":           len(doc.Segments),
		"speakers":           doc.Metadata.SpeakerCount,
		"processing_seconds": doc.Metadata.ProcessingTime,
	})
	return doc, nil
}

func (p *Pipeline) process(ctx context.Context, jobID, displayName string, req Request, start time.Time) (*transcript.Document, error) {
	// Both stages read the same file and are independent until the merge,
	// so they run concurrently.
	var wg sync.WaitGroup
	var diaRes stageResult[*diarization.Response]
	var trRes stageResult[*transcription.Response]

	wg.Add(2)
	go func() {
		defer wg.Done()
		diaRes = p.diarize(ctx, req)
	}()
	go func() {
		defer wg.Done()
		trRes = p.transcribe(ctx, req)
	}()
	wg.Wait()

	if diaRes.err != nil {
		p.recordError(ctx, "diarize", diaRes.err)
		return nil, diaRes.err
	}
	if trRes.err != nil {
		p.recordError(ctx, "transcribe", trRes.err)
		return nil, trRes.err
	}
	if p.metrics != nil {
		p.metrics.RecordStage(ctx, "diarize", diaRes.duration)
		p.metrics.RecordStage(ctx, "transcribe", trRes.duration)
	}

	dia, tr := diaRes.value, trRes.value

	includeWords := p.opts.IncludeWords
	if req.IncludeWords != nil {
		includeWords = *req.IncludeWords
	}

	_, mergeSpan := observability.StartSpan(ctx, observability.SpanMerge)
	segments, err := transcript.Merge(dia.Segments, tr.Tokens, includeWords, tr.Confidence)
	mergeSpan.End()
	if err != nil {
		p.recordError(ctx, "merge", err)
		return nil, err
	}

	speakers := diarization.Speakers(dia.Segments)
	observability.SetSpanAttribute(ctx, observability.AttrSpeakerCount, len(speakers))
	observability.SetSpanAttribute(ctx, observability.AttrSegmentCount, len(segments))
	observability.SetSpanAttribute(ctx, observability.AttrTokenCount, len(tr.Tokens))

	doc := &transcript.Document{
		Segments: segments,
		Metadata: transcript.Metadata{
			AudioFile:           displayName,
			DurationSeconds:     tr.Duration,
			SpeakerCount:        len(speakers),
			Speakers:            speakers,
			ProcessingTime:      time.Since(start).Seconds(),
			DiarizationTime:     diaRes.duration.Seconds(),
			TranscriptionTime:   trRes.duration.Seconds(),
			ClusteringThreshold: dia.ClusteringThreshold,
			ModelVersion:        tr.Model,
		},
	}
	return doc, nil
}

func (p *Pipeline) diarize(ctx context.Context, req Request) stageResult[*diarization.Response] {
	ctx, span := observability.StartSpan(ctx, observability.SpanDiarize)
	defer span.End()

	prov, err := p.diarizers.Get(ctx)
	if err != nil {
		return stageResult[*diarization.Response]{err: apperrors.ModelUnavailable("diarization").WithCause(err)}
	}
	observability.SetSpanAttribute(ctx, observability.AttrProvider, prov.Name())

	numSpeakers := p.opts.NumSpeakers
	if req.NumSpeakers > 0 {
		numSpeakers = req.NumSpeakers
	}
	threshold := p.opts.ClusteringThreshold
	if req.ClusteringThreshold > 0 {
		threshold = req.ClusteringThreshold
	}

	start := time.Now()
	res, err := prov.Diarize(ctx, diarization.Request{
		AudioPath:           req.AudioPath,
		NumSpeakers:         numSpeakers,
		ClusteringThreshold: threshold,
		Language:            p.language(req),
	})
	duration := time.Since(start)
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return stageResult[*diarization.Response]{duration: duration, err: err}
		}
		return stageResult[*diarization.Response]{duration: duration, err: apperrors.ModelFailure("diarization", err)}
	}
	return stageResult[*diarization.Response]{value: res, duration: duration}
}

func (p *Pipeline) transcribe(ctx context.Context, req Request) stageResult[*transcription.Response] {
	ctx, span := observability.StartSpan(ctx, observability.SpanTranscribe)
	defer span.End()

	prov, err := p.transcribers.Get(ctx)
	if err != nil {
		return stageResult[*transcription.Response]{err: apperrors.ModelUnavailable("transcription").WithCause(err)}
	}
	observability.SetSpanAttribute(ctx, observability.AttrProvider, prov.Name())

	start := time.Now()
	res, err := prov.Transcribe(ctx, transcription.Request{
		AudioPath: req.AudioPath,
		Language:  p.language(req),
		Model:     p.opts.Model,
	})
	duration := time.Since(start)
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return stageResult[*transcription.Response]{duration: duration, err: err}
		}
		return stageResult[*transcription.Response]{duration: duration, err: apperrors.ModelFailure("transcription", err)}
	}
	return stageResult[*transcription.Response]{value: res, duration: duration}
}

func (p *Pipeline) language(req Request) string {
	if req.Language != "" {
		return req.Language
	}
	return p.opts.Language
}

func (p *Pipeline) recordError(ctx context.Context, stage string, err error) {
	if p.metrics == nil {
		return
	}
	code := string(apperrors.ErrCodeInternal)
	if appErr, ok := apperrors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	p.metrics.RecordError(ctx, stage, code)
}
