// Package errors provides unified error handling for speechkit.
//
// It implements a structured AppError type with machine-readable error
// codes, HTTP status mapping, and retryable detection. The codes cover the
// failure surface of a transcription pipeline: invalid input audio, model
// backend failures, merge precondition violations, and output write
// failures.
package errors
