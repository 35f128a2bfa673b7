// Package cli defines the speechkit command-line interface.
package cli

import (
	"fmt"

	"github.com/skillsenselab/speechkit/config"
	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/version"
)

// CLI is the root command tree parsed by kong.
var CLI struct {
	ConfigFile string `short:"f" type:"path" help:"Path to the YAML configuration file"`
	LogLevel   string `help:"Log level (trace, debug, info, warn, error)" default:""`
	Debug      bool   `help:"Shortcut for --log-level=debug"`

	Transcribe TranscribeCMD `cmd:"" help:"Transcribe an audio file with speaker attribution"`
	Serve      ServeCMD      `cmd:"" help:"Run the transcription HTTP service"`
	Version    VersionCMD    `cmd:"" help:"Print version information"`
}

// VersionCMD prints the build version and exits.
type VersionCMD struct{}

func (v *VersionCMD) Run() error {
	fmt.Println(version.Short())
	return nil
}

// loadConfig reads configuration, applies CLI overrides, and initializes
// the global logger.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}

	opts := []config.LoaderOption{}
	if CLI.ConfigFile != "" {
		opts = append(opts, config.WithConfigFile(CLI.ConfigFile))
	}
	if err := config.Load("speechkit", cfg, opts...); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	cfg.ApplyDefaults()
	if CLI.Debug && CLI.LogLevel == "" {
		CLI.LogLevel = "debug"
	}
	if CLI.LogLevel != "" {
		cfg.Logging.Level = CLI.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging)
	return cfg, nil
}
