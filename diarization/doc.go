// Package diarization defines the provider interface and common types
// for interacting with speaker diarization backends.
//
// A diarization backend attributes time ranges of an audio recording to
// opaque speaker labels. Intervals are returned sorted ascending by start
// time; they may overlap and may leave gaps (silence, cross-talk).
//
// # Backends
//
//   - diarization/pyannote: Pyannote-based speaker diarization sidecar
//
// # Usage
//
//	mgr := diarization.NewManager()
//	mgr.Register(pyannote.ProviderName, pyannote.Factory())
//	result, err := p.Diarize(ctx, req)
package diarization
