// Package transcript merges two independently produced, time-stamped
// annotation streams over the same audio timeline (speaker diarization
// intervals, and recognized sub-word tokens with per-token timestamps)
// into one ordered sequence of speaker-attributed text segments.
//
// Each token is anchored at its temporal midpoint and attributed to the
// interval containing that midpoint. Tokens falling in gaps between
// intervals, or past the last interval, belong to no speaker and are
// dropped. Consecutive tokens with the same speaker accumulate into a
// run; a speaker change flushes the run as one output segment. Because
// dropped tokens are invisible to the run logic, a speaker's run spans
// silent gaps without being split.
//
// Merging is a pure, synchronous, single-pass computation: both inputs
// must already be sorted ascending by start time, and the interval cursor
// only ever moves forward, giving O(tokens + intervals) time. Unsorted or
// negative-duration input is rejected with a validation error rather than
// producing garbage segmentation.
package transcript
