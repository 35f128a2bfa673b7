package cli

import (
	"context"
	"fmt"
	"os"

	apperrors "github.com/skillsenselab/speechkit/errors"
	"github.com/skillsenselab/speechkit/pipeline"
)

// TranscribeCMD runs one transcription job from the command line.
type TranscribeCMD struct {
	Filename string `arg:"" type:"path" help:"Audio file to transcribe"`

	Output              string  `short:"o" type:"path" help:"Write the transcript to this file instead of stdout"`
	Format              string  `default:"json" enum:"json,text" help:"Output format"`
	NumSpeakers         int     `short:"n" help:"Exact number of speakers (0 = auto-detect)"`
	ClusteringThreshold float64 `help:"Diarization clustering threshold (0 = use configured default)"`
	Language            string  `short:"l" help:"Expected audio language (empty = use configured default)"`
	IncludeWords        bool    `short:"w" help:"Emit per-word timing on every segment"`
}

func (t *TranscribeCMD) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return err
	}

	includeWords := t.IncludeWords
	doc, err := a.pipeline.Process(ctx, pipeline.Request{
		AudioPath:           t.Filename,
		NumSpeakers:         t.NumSpeakers,
		ClusteringThreshold: t.ClusteringThreshold,
		Language:            t.Language,
		IncludeWords:        &includeWords,
	})
	if err != nil {
		return err
	}

	var out []byte
	switch t.Format {
	case "text":
		out = []byte(doc.Text())
	default:
		out, err = doc.JSON()
		if err != nil {
			return err
		}
		out = append(out, '\n')
	}

	if t.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(t.Output, out, 0o644); err != nil {
		return apperrors.WriteFailed(t.Output, err)
	}
	fmt.Fprintf(os.Stderr, "transcript written to %s\n", t.Output)
	return nil
}
