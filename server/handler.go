package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/speechkit/diarization"
	apperrors "github.com/skillsenselab/speechkit/errors"
	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/pipeline"
	"github.com/skillsenselab/speechkit/provider"
	"github.com/skillsenselab/speechkit/transcription"
	"github.com/skillsenselab/speechkit/util"
	"github.com/skillsenselab/speechkit/version"
)

// Handler exposes the transcription pipeline over HTTP.
type Handler struct {
	pipeline     *pipeline.Pipeline
	diarizers    *provider.Manager[diarization.Provider]
	transcribers *provider.Manager[transcription.Provider]
	uploadDir    string
	log          *logger.Logger
}

// NewHandler creates a Handler. uploadDir is where audio uploads are
// staged; empty means the system temp directory.
func NewHandler(p *pipeline.Pipeline, diarizers *provider.Manager[diarization.Provider], transcribers *provider.Manager[transcription.Provider], uploadDir string) *Handler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &Handler{
		pipeline:     p,
		diarizers:    diarizers,
		transcribers: transcribers,
		uploadDir:    uploadDir,
		log:          logger.Get("handler"),
	}
}

// Register mounts the API routes on the Gin engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/health", h.handleHealth)
	engine.POST("/v1/transcriptions", h.handleTranscribe)
}

// handleTranscribe accepts a multipart audio upload and returns the
// speaker-attributed transcript. Form fields:
//
//	file                  the audio file (required)
//	num_speakers          exact speaker count hint
//	clustering_threshold  diarization clustering threshold override
//	language              expected audio language
//	include_words         per-word timing on segments
func (h *Handler) handleTranscribe(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		RespondWithError(c, apperrors.MissingField("file"))
		return
	}

	req := pipeline.Request{
		DisplayName: util.SanitizeFilename(file.Filename, "audio"),
	}

	if v := c.PostForm("num_speakers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			RespondWithError(c, apperrors.InvalidInput("num_speakers", "must be a non-negative integer"))
			return
		}
		req.NumSpeakers = n
	}
	if v := c.PostForm("clustering_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			RespondWithError(c, apperrors.InvalidInput("clustering_threshold", "must be a number between 0 and 1"))
			return
		}
		req.ClusteringThreshold = f
	}
	req.Language = c.PostForm("language")
	if v := c.PostForm("include_words"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			RespondWithError(c, apperrors.InvalidInput("include_words", "must be a boolean"))
			return
		}
		req.IncludeWords = &b
	}

	// Stage the upload under a unique name so concurrent requests with the
	// same file name cannot collide.
	staged := filepath.Join(h.uploadDir, uuid.New().String()+"-"+req.DisplayName)
	if err := c.SaveUploadedFile(file, staged); err != nil {
		RespondWithError(c, apperrors.WriteFailed(staged, err))
		return
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			h.log.Warn("failed to remove staged upload", map[string]interface{}{
				"path":  staged,
				"error": err.Error(),
			})
		}
	}()
	req.AudioPath = staged

	doc, err := h.pipeline.Process(c.Request.Context(), req)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOK(c, doc)
}

// handleHealth reports overall readiness plus per-stage provider health.
func (h *Handler) handleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	diaOK := false
	if p, err := h.diarizers.Get(ctx); err == nil {
		diaOK = p.IsAvailable(ctx)
	}
	trOK := false
	if p, err := h.transcribers.Get(ctx); err == nil {
		trOK = p.IsAvailable(ctx)
	}

	status := "ok"
	code := http.StatusOK
	if !diaOK || !trOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":        status,
		"version":       version.Short(),
		"diarization":   diaOK,
		"transcription": trOK,
	})
}
