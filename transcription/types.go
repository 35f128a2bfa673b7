package transcription

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// Model is the transcription model to use.
	Model string `json:"model,omitempty"`
}

// Response holds the result of a transcription call.
type Response struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Tokens contains time-aligned sub-word tokens, sorted by start time.
	// Nil when the engine does not support word-level timing.
	Tokens []Token `json:"tokens,omitempty"`
	// Confidence is the utterance-level confidence in [0,1].
	Confidence float64 `json:"confidence"`
	// Duration is the audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
	// Model is the model version string reported by the backend.
	Model string `json:"model,omitempty"`
}

// Token represents one recognized sub-word unit.
type Token struct {
	// Text is the token piece, possibly a word fragment, with embedded
	// spacing preserved.
	Text string `json:"text"`
	// Start is the token start time in seconds.
	Start float64 `json:"start"`
	// End is the token end time in seconds. Start <= End.
	End float64 `json:"end"`
	// Confidence is the per-token confidence in [0,1].
	Confidence float64 `json:"confidence"`
}

// Midpoint returns the token's temporal center, the anchor used for
// speaker attribution.
func (t Token) Midpoint() float64 {
	return (t.Start + t.End) / 2
}
