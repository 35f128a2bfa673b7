package transcript

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleDocument() *Document {
	return &Document{
		Segments: []Segment{
			{Speaker: "SPEAKER_00", Text: "Hi there", StartTime: 0.0, EndTime: 1.0, Confidence: 0.95},
			{Speaker: "SPEAKER_01", Text: "bye", StartTime: 5.2, EndTime: 5.6, Confidence: 0.95},
		},
		Metadata: Metadata{
			AudioFile:           "meeting.wav",
			DurationSeconds:     10.0,
			SpeakerCount:        2,
			Speakers:            []string{"SPEAKER_00", "SPEAKER_01"},
			ProcessingTime:      1.25,
			DiarizationTime:     0.75,
			TranscriptionTime:   1.1,
			ClusteringThreshold: 0.7,
			ModelVersion:        "base",
		},
	}
}

func TestDocumentJSON(t *testing.T) {
	data, err := sampleDocument().JSON()
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	segments, ok := decoded["segments"].([]any)
	if !ok || len(segments) != 2 {
		t.Fatalf("expected 2 segments in JSON, got %v", decoded["segments"])
	}
	first, ok := segments[0].(map[string]any)
	if !ok {
		t.Fatalf("segment is not an object: %v", segments[0])
	}
	for _, key := range []string{"speaker", "text", "startTime", "endTime", "confidence"} {
		if _, present := first[key]; !present {
			t.Errorf("segment missing key %q", key)
		}
	}
	if _, present := first["words"]; present {
		t.Error("segment without word timing must omit the words key")
	}

	meta, ok := decoded["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata is not an object: %v", decoded["metadata"])
	}
	for _, key := range []string{
		"audioFile", "durationSeconds", "speakerCount", "speakers",
		"processingTime", "diarizationTime", "transcriptionTime",
		"clusteringThreshold", "modelVersion",
	} {
		if _, present := meta[key]; !present {
			t.Errorf("metadata missing key %q", key)
		}
	}
}

func TestDocumentJSONWords(t *testing.T) {
	doc := sampleDocument()
	doc.Segments[0].Words = []Word{
		{Word: "Hi", StartTime: 0.0, EndTime: 0.5, Confidence: 0.9},
	}

	data, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if !strings.Contains(string(data), `"words"`) {
		t.Error("expected words key in JSON output")
	}
	if !strings.Contains(string(data), `"word": "Hi"`) {
		t.Error("expected word entry in JSON output")
	}
}

func TestDocumentText(t *testing.T) {
	text := sampleDocument().Text()

	for _, want := range []string{
		"Audio: meeting.wav",
		"Speakers: 2 (SPEAKER_00, SPEAKER_01)",
		"[00:00 - 00:01] SPEAKER_00: Hi there",
		"[00:05 - 00:05] SPEAKER_01: bye",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5.6, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
