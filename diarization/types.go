package diarization

// Request holds parameters for a diarization call.
type Request struct {
	// AudioPath is the path to the audio file to diarize.
	AudioPath string `json:"audio_path"`
	// NumSpeakers is the exact number of speakers (0 = auto-detect).
	NumSpeakers int `json:"num_speakers,omitempty"`
	// MinSpeakers is the minimum expected number of speakers.
	MinSpeakers int `json:"min_speakers,omitempty"`
	// MaxSpeakers is the maximum expected number of speakers.
	MaxSpeakers int `json:"max_speakers,omitempty"`
	// ClusteringThreshold tunes speaker clustering (0 = backend default).
	ClusteringThreshold float64 `json:"clustering_threshold,omitempty"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
}

// Response holds the result of a diarization call.
type Response struct {
	// Segments contains speaker-attributed intervals, sorted by start time.
	Segments []Segment `json:"segments"`
	// NumSpeakers is the number of speakers detected.
	NumSpeakers int `json:"num_speakers"`
	// ClusteringThreshold is the threshold the backend actually used.
	ClusteringThreshold float64 `json:"clustering_threshold,omitempty"`
}

// Segment represents one contiguous time range attributed to one speaker.
type Segment struct {
	// Speaker is the identified speaker label (e.g. "Speaker_01"), stable
	// across a single diarization run.
	Speaker string `json:"speaker"`
	// Start is the interval start time in seconds.
	Start float64 `json:"start"`
	// End is the interval end time in seconds. Start <= End.
	End float64 `json:"end"`
}

// Speakers returns the distinct speaker labels in first-appearance order.
func Speakers(segments []Segment) []string {
	seen := make(map[string]bool, len(segments))
	var out []string
	for _, s := range segments {
		if !seen[s.Speaker] {
			seen[s.Speaker] = true
			out = append(out, s.Speaker)
		}
	}
	return out
}
