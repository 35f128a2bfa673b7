package provider

import "context"

// Provider is the contract every speech backend satisfies. The diarization
// and transcription packages narrow it with their own request methods.
type Provider interface {
	// Name identifies the backend, e.g. "pyannote" or "whisper".
	Name() string
	// IsAvailable reports whether the backend can take work right now.
	// Sidecar-backed providers probe their service endpoint here.
	IsAvailable(ctx context.Context) bool
}

// Factory builds a backend from its options map as loaded from config.
// Option values arrive as whatever YAML decoded them to, so factories
// coerce types themselves.
type Factory[T Provider] func(cfg map[string]any) (T, error)
