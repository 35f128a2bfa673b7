// Package pipeline orchestrates the speaker-attributed transcription flow:
// diarization and transcription run concurrently against their providers,
// then the two timelines are merged into a transcript document.
package pipeline
