package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSON renders the document as indented JSON, the canonical output format.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Text renders a human-readable transcript: a short metadata header
// followed by one line per segment.
func (d *Document) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Audio: %s\n", d.Metadata.AudioFile)
	fmt.Fprintf(&b, "Duration: %s\n", formatTimestamp(d.Metadata.DurationSeconds))
	fmt.Fprintf(&b, "Speakers: %d (%s)\n", d.Metadata.SpeakerCount, strings.Join(d.Metadata.Speakers, ", "))
	b.WriteString("\n")

	for _, seg := range d.Segments {
		fmt.Fprintf(&b, "[%s - %s] %s: %s\n",
			formatTimestamp(seg.StartTime), formatTimestamp(seg.EndTime), seg.Speaker, seg.Text)
	}
	return b.String()
}

// formatTimestamp renders seconds as mm:ss, or h:mm:ss past an hour.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
