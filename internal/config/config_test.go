package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "key-123")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RiotAPIKey != "key-123" {
		t.Errorf("api key = %q", cfg.RiotAPIKey)
	}
	if cfg.Region != "americas" {
		t.Errorf("region = %q, want americas", cfg.Region)
	}
	if cfg.ServerPort != "4000" {
		t.Errorf("port = %q, want 4000", cfg.ServerPort)
	}
	if cfg.SampleBuffer != 3*time.Second {
		t.Errorf("sample buffer = %v, want 3s", cfg.SampleBuffer)
	}
	if cfg.FullReportBuffer != 2*time.Second {
		t.Errorf("full report buffer = %v, want 2s", cfg.FullReportBuffer)
	}
	if cfg.FullReport {
		t.Error("full report = true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "key-123")
	t.Setenv("RIOT_REGION", "europe")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SAMPLE_BUFFER_MS", "250")
	t.Setenv("FULL_REPORT", "true")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "europe" {
		t.Errorf("region = %q, want europe", cfg.Region)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("port = %q, want 8080", cfg.ServerPort)
	}
	if cfg.SampleBuffer != 250*time.Millisecond {
		t.Errorf("sample buffer = %v, want 250ms", cfg.SampleBuffer)
	}
	if !cfg.FullReport {
		t.Error("full report = false, want true")
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")

	if _, err := Load(zerolog.Nop()); err == nil {
		t.Error("Load() succeeded, want error for missing RIOT_API_KEY")
	}
}
