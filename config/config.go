package config

import (
	"fmt"

	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/server"
)

// BaseConfig contains essential fields that every service needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "speechkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("base.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// ProviderConfig selects a model backend and carries its backend-specific
// options. Options feed the provider factory as an untyped map, matching
// the provider.Factory signature.
type ProviderConfig struct {
	Backend string         `yaml:"backend" mapstructure:"backend"`
	Options map[string]any `yaml:"options" mapstructure:"options"`
}

// PipelineConfig holds default parameters for transcription runs.
type PipelineConfig struct {
	// IncludeWords controls whether word-level timing detail is emitted.
	IncludeWords bool `yaml:"include_words" mapstructure:"include_words"`
	// NumSpeakers is the expected speaker count (0 = auto-detect).
	NumSpeakers int `yaml:"num_speakers" mapstructure:"num_speakers"`
	// ClusteringThreshold is passed to the diarization backend.
	ClusteringThreshold float64 `yaml:"clustering_threshold" mapstructure:"clustering_threshold"`
	// Language is the expected audio language (e.g. "en").
	Language string `yaml:"language" mapstructure:"language"`
}

// ApplyDefaults applies default values to pipeline configuration.
func (c *PipelineConfig) ApplyDefaults() {
	if c.ClusteringThreshold == 0 {
		c.ClusteringThreshold = 0.7
	}
}

// Validate validates pipeline configuration.
func (c *PipelineConfig) Validate() error {
	if c.ClusteringThreshold < 0 || c.ClusteringThreshold > 1 {
		return fmt.Errorf("pipeline.clustering_threshold must be in [0,1] (got: %g)", c.ClusteringThreshold)
	}
	if c.NumSpeakers < 0 {
		return fmt.Errorf("pipeline.num_speakers must be non-negative (got: %d)", c.NumSpeakers)
	}
	return nil
}

// ObservabilityConfig controls OpenTelemetry trace and metric export.
type ObservabilityConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
}

// ApplyDefaults applies default values to observability configuration.
func (c *ObservabilityConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// Validate validates observability configuration.
func (c *ObservabilityConfig) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("observability.sample_rate must be in [0,1] (got: %g)", c.SampleRate)
	}
	return nil
}

// Config is the root speechkit configuration tree.
type Config struct {
	Base          BaseConfig          `yaml:"base" mapstructure:"base"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Server        server.Config       `yaml:"server" mapstructure:"server"`
	Diarization   ProviderConfig      `yaml:"diarization" mapstructure:"diarization"`
	Transcription ProviderConfig      `yaml:"transcription" mapstructure:"transcription"`
	Pipeline      PipelineConfig      `yaml:"pipeline" mapstructure:"pipeline"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults across all sections.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Pipeline.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Diarization.Backend == "" {
		c.Diarization.Backend = "pyannote"
	}
	if c.Transcription.Backend == "" {
		c.Transcription.Backend = "whisper"
	}
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}
