package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors (malformed audio or request)
const (
	// ErrCodeInvalidInput indicates the request input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidAudio indicates the audio file is missing or unreadable.
	ErrCodeInvalidAudio ErrorCode = "INVALID_AUDIO"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Model errors (collaborator initialization or inference failure)
const (
	// ErrCodeModelUnavailable indicates no model backend is available.
	ErrCodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	// ErrCodeModelFailure indicates a model backend failed during inference.
	ErrCodeModelFailure ErrorCode = "MODEL_FAILURE"
)

// I/O errors
const (
	// ErrCodeWriteFailed indicates an output write failure.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
)

// Connection/Availability errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates a service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeTimeout:            true,
	ErrCodeModelUnavailable:   true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
