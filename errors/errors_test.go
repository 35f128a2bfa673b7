package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidAudio, "bad audio", http.StatusBadRequest)
	if err.Code != ErrCodeInvalidAudio {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidAudio, err.Code)
	}
	if err.Message != "bad audio" {
		t.Errorf("expected message 'bad audio', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("INVALID_AUDIO should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_InvalidAudio(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := InvalidAudio("/tmp/a.wav", cause)
	if err.Code != ErrCodeInvalidAudio {
		t.Errorf("expected INVALID_AUDIO, got %s", err.Code)
	}
	if err.Details["path"] != "/tmp/a.wav" {
		t.Errorf("expected path detail, got %v", err.Details["path"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to unwrap")
	}
}

func TestAppError_ModelUnavailable(t *testing.T) {
	err := ModelUnavailable("diarization")
	if err.Code != ErrCodeModelUnavailable {
		t.Errorf("expected MODEL_UNAVAILABLE, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", err.HTTPStatus)
	}
	if !err.Retryable {
		t.Error("MODEL_UNAVAILABLE should be retryable")
	}
	if err.Details["stage"] != "diarization" {
		t.Errorf("expected stage=diarization, got %v", err.Details["stage"])
	}
}

func TestAppError_ModelFailure(t *testing.T) {
	cause := fmt.Errorf("sidecar returned 500")
	err := ModelFailure("transcription", cause)
	if err.Code != ErrCodeModelFailure {
		t.Errorf("expected MODEL_FAILURE, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("MODEL_FAILURE should not be retryable")
	}
	if !strings.Contains(err.Error(), "sidecar returned 500") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_Validation(t *testing.T) {
	err := Validation("tokens must be sorted by start time")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
}

func TestAppError_WriteFailed(t *testing.T) {
	err := WriteFailed("/out/result.json", fmt.Errorf("disk full"))
	if err.Code != ErrCodeWriteFailed {
		t.Errorf("expected WRITE_FAILED, got %s", err.Code)
	}
	if err.Details["path"] != "/out/result.json" {
		t.Errorf("expected path detail, got %v", err.Details["path"])
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Validation("bad input").WithDetail("index", 3)
	if err.Details["index"] != 3 {
		t.Errorf("expected index=3, got %v", err.Details["index"])
	}
}

func TestAsAppError(t *testing.T) {
	inner := ModelFailure("diarization", fmt.Errorf("boom"))
	wrapped := fmt.Errorf("pipeline: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find AppError in chain")
	}
	if appErr.Code != ErrCodeModelFailure {
		t.Errorf("expected MODEL_FAILURE, got %s", appErr.Code)
	}

	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error should not be an AppError")
	}
}

func TestToResponse(t *testing.T) {
	err := ModelUnavailable("transcription")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeModelUnavailable {
		t.Errorf("expected code in response, got %s", resp.Error.Code)
	}
	if !resp.Error.Retryable {
		t.Error("expected retryable in response")
	}
}
