// Package provider implements a generic registry and selection pattern for
// pluggable model backends.
//
// Domain packages (diarization, transcription) define a Provider interface
// embedding the base Provider here, register backend factories on a
// Registry, and resolve an instance through a Manager with a Selector
// strategy (priority order or first-healthy).
package provider
