package transcript

import (
	"fmt"

	"github.com/skillsenselab/speechkit/diarization"
	"github.com/skillsenselab/speechkit/errors"
	"github.com/skillsenselab/speechkit/transcription"
)

// validateInputs checks the merger's preconditions: both input slices are
// sorted by start time and no element has a negative duration. Violations
// surface as validation errors rather than silently producing a garbage
// transcript.
func validateInputs(intervals []diarization.Segment, tokens []transcription.Token) error {
	for i, iv := range intervals {
		if iv.End < iv.Start {
			return errors.Validation(fmt.Sprintf("diarization interval %d has negative duration (start=%.3f end=%.3f)", i, iv.Start, iv.End))
		}
		if i > 0 && iv.Start < intervals[i-1].Start {
			return errors.Validation(fmt.Sprintf("diarization intervals not sorted at index %d (start=%.3f after %.3f)", i, iv.Start, intervals[i-1].Start))
		}
	}
	for i, tok := range tokens {
		if tok.End < tok.Start {
			return errors.Validation(fmt.Sprintf("transcription token %d has negative duration (start=%.3f end=%.3f)", i, tok.Start, tok.End))
		}
		if i > 0 && tok.Start < tokens[i-1].Start {
			return errors.Validation(fmt.Sprintf("transcription tokens not sorted at index %d (start=%.3f after %.3f)", i, tok.Start, tokens[i-1].Start))
		}
	}
	return nil
}
