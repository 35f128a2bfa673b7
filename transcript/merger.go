package transcript

import (
	"strings"

	"github.com/skillsenselab/speechkit/diarization"
	"github.com/skillsenselab/speechkit/transcription"
)

// Merge combines sorted diarization intervals and sorted transcription
// tokens into speaker-attributed segments. confidence is the single
// utterance-level value stamped on every emitted segment.
//
// If tokens is empty the merger falls back to emitting one empty-text
// segment per interval, with timing taken from the interval itself: text
// cannot be attributed without token timing, but the speaker activity
// timeline is still useful downstream.
func Merge(intervals []diarization.Segment, tokens []transcription.Token, includeWords bool, confidence float64) ([]Segment, error) {
	if err := validateInputs(intervals, tokens); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		segments := make([]Segment, 0, len(intervals))
		for _, iv := range intervals {
			segments = append(segments, Segment{
				Speaker:    iv.Speaker,
				Text:       "",
				StartTime:  iv.Start,
				EndTime:    iv.End,
				Confidence: confidence,
			})
		}
		return segments, nil
	}

	acc := newRunAccumulator(includeWords, confidence)
	var out []Segment
	cursor := 0

	for _, tok := range tokens {
		var speaker string
		var ok bool
		cursor, speaker, ok = locate(intervals, cursor, tok.Midpoint())
		if !ok {
			// Gap or past the last interval: the token belongs to no
			// speaker and is invisible to the run logic.
			continue
		}
		if seg, flushed := acc.observe(speaker, tok); flushed {
			out = append(out, seg)
		}
	}

	if seg, flushed := acc.flush(); flushed {
		out = append(out, seg)
	}
	return out, nil
}

// locate scans forward from cursor for the interval containing midpoint,
// bounds inclusive. It returns the new cursor position, the matched
// speaker, and whether a match was found. The cursor never rewinds: a
// midpoint before the cursor interval's start lies in a gap, and a cursor
// that runs past the last interval stays there for all later tokens.
func locate(intervals []diarization.Segment, cursor int, midpoint float64) (int, string, bool) {
	for cursor < len(intervals) {
		iv := intervals[cursor]
		switch {
		case midpoint >= iv.Start && midpoint <= iv.End:
			return cursor, iv.Speaker, true
		case midpoint < iv.Start:
			return cursor, "", false
		default:
			cursor++
		}
	}
	return cursor, "", false
}

// runAccumulator builds up one speaker run at a time. It has two states:
// no open run, and an open run for a single speaker. Observing a token
// for a different speaker flushes the open run and starts a new one.
type runAccumulator struct {
	includeWords bool
	confidence   float64

	open    bool
	speaker string
	text    strings.Builder
	words   []Word
	start   float64
	end     float64
}

func newRunAccumulator(includeWords bool, confidence float64) *runAccumulator {
	return &runAccumulator{includeWords: includeWords, confidence: confidence}
}

// observe feeds one attributed token into the accumulator. When the token
// changes speaker it returns the completed previous run, if that run had
// any text.
func (a *runAccumulator) observe(speaker string, tok transcription.Token) (Segment, bool) {
	if a.open && speaker == a.speaker {
		a.append(tok)
		return Segment{}, false
	}

	seg, flushed := a.flush()

	a.open = true
	a.speaker = speaker
	a.start = tok.Start
	a.append(tok)

	return seg, flushed
}

// append adds a token to the open run without inserting separators; token
// text carries its own embedded spacing.
func (a *runAccumulator) append(tok transcription.Token) {
	a.text.WriteString(tok.Text)
	a.end = tok.End
	if a.includeWords {
		a.words = append(a.words, Word{
			Word:       tok.Text,
			StartTime:  tok.Start,
			EndTime:    tok.End,
			Confidence: tok.Confidence,
		})
	}
}

// flush completes the open run and resets the accumulator. Runs whose
// text trims to nothing are suppressed, never emitted.
func (a *runAccumulator) flush() (Segment, bool) {
	if !a.open {
		return Segment{}, false
	}

	text := strings.TrimSpace(a.text.String())
	seg := Segment{
		Speaker:    a.speaker,
		Text:       text,
		StartTime:  a.start,
		EndTime:    a.end,
		Words:      a.words,
		Confidence: a.confidence,
	}

	a.open = false
	a.speaker = ""
	a.text.Reset()
	a.words = nil
	a.start = 0
	a.end = 0

	if text == "" {
		return Segment{}, false
	}
	return seg, true
}
