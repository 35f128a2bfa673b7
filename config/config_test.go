package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		var cfg BaseConfig
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Name != "speechkit" {
			t.Errorf("expected default name 'speechkit', got %q", cfg.Name)
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := BaseConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})
}

func TestPipelineConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg PipelineConfig
		cfg.ApplyDefaults()
		if cfg.ClusteringThreshold != 0.7 {
			t.Errorf("expected threshold 0.7, got %g", cfg.ClusteringThreshold)
		}
	})

	tests := []struct {
		name    string
		cfg     PipelineConfig
		wantErr string
	}{
		{"valid", PipelineConfig{ClusteringThreshold: 0.5}, ""},
		{"threshold too high", PipelineConfig{ClusteringThreshold: 1.5}, "clustering_threshold"},
		{"negative speakers", PipelineConfig{ClusteringThreshold: 0.5, NumSpeakers: -1}, "num_speakers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestConfigApplyDefaultsSetsBackends(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Diarization.Backend != "pyannote" {
		t.Errorf("expected default diarization backend 'pyannote', got %q", cfg.Diarization.Backend)
	}
	if cfg.Transcription.Backend != "whisper" {
		t.Errorf("expected default transcription backend 'whisper', got %q", cfg.Transcription.Backend)
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
base:
  name: speechkit-test
  environment: staging
pipeline:
  include_words: true
  clustering_threshold: 0.6
transcription:
  backend: whisper
  options:
    url: http://localhost:9000
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg Config
	if err := Load("speechkit-test", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Base.Name != "speechkit-test" {
		t.Errorf("expected name 'speechkit-test', got %q", cfg.Base.Name)
	}
	if !cfg.Pipeline.IncludeWords {
		t.Error("expected include_words=true")
	}
	if cfg.Pipeline.ClusteringThreshold != 0.6 {
		t.Errorf("expected threshold 0.6, got %g", cfg.Pipeline.ClusteringThreshold)
	}
	if cfg.Transcription.Options["url"] != "http://localhost:9000" {
		t.Errorf("expected backend option url, got %v", cfg.Transcription.Options["url"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg Config
	if err := Load("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/speechkit/config.yml": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("speechkit", LoaderConfig{})
	if files.ConfigFile != "./cmd/speechkit/config.yml" {
		t.Errorf("expected config file at ./cmd/speechkit/config.yml, got %q", files.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
