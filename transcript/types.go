package transcript

// Segment is one contiguous run of tokens attributed to one speaker.
// Field order matches the wire schema consumed by downstream tooling;
// do not reorder.
type Segment struct {
	// Speaker is the diarization speaker label.
	Speaker string `json:"speaker"`
	// Text is the concatenated token text, surrounding whitespace trimmed.
	Text string `json:"text"`
	// StartTime is the start of the first constituent token in seconds.
	// In the no-token fallback it is the interval start instead.
	StartTime float64 `json:"startTime"`
	// EndTime is the end of the last constituent token in seconds.
	EndTime float64 `json:"endTime"`
	// Words holds per-token timing detail, in original order. Nil, and
	// absent from JSON, unless word timings were requested. Callers must
	// check presence, not just non-emptiness.
	Words []Word `json:"words,omitempty"`
	// Confidence is the utterance-level confidence shared by all segments
	// of one merge run, propagated from the recognizer rather than
	// recomputed per segment.
	Confidence float64 `json:"confidence"`
}

// Word is the timing record for one constituent token.
type Word struct {
	Word       string  `json:"word"`
	StartTime  float64 `json:"startTime"`
	EndTime    float64 `json:"endTime"`
	Confidence float64 `json:"confidence"`
}

// Metadata describes one transcription run.
type Metadata struct {
	AudioFile           string   `json:"audioFile"`
	DurationSeconds     float64  `json:"durationSeconds"`
	SpeakerCount        int      `json:"speakerCount"`
	Speakers            []string `json:"speakers"`
	ProcessingTime      float64  `json:"processingTime"`
	DiarizationTime     float64  `json:"diarizationTime"`
	TranscriptionTime   float64  `json:"transcriptionTime"`
	ClusteringThreshold float64  `json:"clusteringThreshold"`
	ModelVersion        string   `json:"modelVersion"`
}

// Document is the complete output of one transcription run.
type Document struct {
	Segments []Segment `json:"segments"`
	Metadata Metadata  `json:"metadata"`
}
