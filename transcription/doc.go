// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// Backends return the aggregate text, a single utterance-level confidence,
// and, when the engine supports word-level timing, a sequence of
// sub-word tokens with per-token timestamps sorted ascending by start.
// Token text carries its own embedded spacing; concatenating consecutive
// tokens without separators reconstructs the sentence.
//
// # Backends
//
//   - transcription/whisper: faster-whisper HTTP sidecar
package transcription
