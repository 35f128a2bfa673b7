package whisper

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skillsenselab/speechkit/transcription"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("RIFFfake"), 0644); err != nil {
		t.Fatalf("write test audio: %v", err)
	}
	return path
}

func TestTranscribeWithWordTimings(t *testing.T) {
	var wantedWordTimestamps string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		wantedWordTimestamps = r.FormValue("word_timestamps")

		json.NewEncoder(w).Encode(whisperResponse{
			Text:     "Hi there bye",
			Language: "en",
			Duration: 10.0,
			Segments: []whisperSegment{
				{
					Text: "Hi there", Start: 0.0, End: 1.0, AvgLogprob: -0.1,
					Words: []whisperWord{
						{Word: "Hi", Start: 0.0, End: 0.5, Probability: 0.98},
						{Word: " there", Start: 0.5, End: 1.0, Probability: 0.95},
					},
				},
				{
					Text: " bye", Start: 5.2, End: 5.6, AvgLogprob: -0.3,
					Words: []whisperWord{
						{Word: " bye", Start: 5.2, End: 5.6, Probability: 0.9},
					},
				},
			},
		})
	}))
	defer srv.Close()

	p := NewProvider(Config{URL: srv.URL, Timeout: 5 * time.Second})
	resp, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: writeTestAudio(t)})
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if wantedWordTimestamps != "true" {
		t.Errorf("expected word_timestamps=true form field, got %q", wantedWordTimestamps)
	}
	if resp.Text != "Hi there bye" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if len(resp.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(resp.Tokens))
	}
	if resp.Tokens[1].Text != " there" {
		t.Errorf("expected token text ' there' with embedded spacing, got %q", resp.Tokens[1].Text)
	}
	if resp.Tokens[2].Start != 5.2 || resp.Tokens[2].End != 5.6 {
		t.Errorf("unexpected third token timing: %+v", resp.Tokens[2])
	}

	wantConf := math.Exp((-0.1 + -0.3) / 2)
	if math.Abs(resp.Confidence-wantConf) > 1e-9 {
		t.Errorf("expected confidence %g, got %g", wantConf, resp.Confidence)
	}
	if resp.Duration != 10.0 {
		t.Errorf("expected duration 10.0, got %g", resp.Duration)
	}
}

func TestTranscribeWithoutWordTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(whisperResponse{
			Text: "no words here",
			Segments: []whisperSegment{
				{Text: "no words here", Start: 0.0, End: 2.0, AvgLogprob: -0.2},
			},
		})
	}))
	defer srv.Close()

	p := NewProvider(Config{URL: srv.URL})
	resp, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: writeTestAudio(t)})
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	// No word detail means nil tokens, which downstream treats as the
	// interval-only fallback signal.
	if resp.Tokens != nil {
		t.Errorf("expected nil tokens, got %v", resp.Tokens)
	}
	if resp.Duration != 2.0 {
		t.Errorf("expected duration from last segment end, got %g", resp.Duration)
	}
}

func TestTranscribeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProvider(Config{URL: srv.URL})
	if _, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: writeTestAudio(t)}); err == nil {
		t.Fatal("expected error for HTTP 503")
	}
}

func TestTranscribeMissingAudio(t *testing.T) {
	p := NewProvider(Config{})
	if _, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "/does/not/exist.wav"}); err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestUtteranceConfidenceClamps(t *testing.T) {
	conf := utteranceConfidence([]whisperSegment{{AvgLogprob: 0.5}})
	if conf != 1 {
		t.Errorf("expected confidence clamped to 1, got %g", conf)
	}
	if got := utteranceConfidence(nil); got != 0 {
		t.Errorf("expected 0 for no segments, got %g", got)
	}
}

func TestTokenMidpoint(t *testing.T) {
	tok := transcription.Token{Start: 1.0, End: 2.0}
	if tok.Midpoint() != 1.5 {
		t.Errorf("expected midpoint 1.5, got %g", tok.Midpoint())
	}
}
