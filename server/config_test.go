package server

import "testing"

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.WriteTimeout != 600 {
		t.Errorf("WriteTimeout = %d, want 600", cfg.WriteTimeout)
	}
	if cfg.MaxBodySize != "100MB" {
		t.Errorf("MaxBodySize = %s, want 100MB", cfg.MaxBodySize)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("expected CORS origins default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	for _, bad := range []Config{
		{Port: -1},
		{Port: 70000},
		{Port: 8080, ReadTimeout: -5},
		{Port: 8080, WriteTimeout: -1},
		{Port: 8080, IdleTimeout: -1},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("expected validation error for %+v", bad)
		}
	}
}
