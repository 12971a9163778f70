package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Mode != ModeOffline {
		t.Fatalf("expected offline mode, got %q", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.LTLang != "en-GB" {
		t.Fatalf("expected en-GB, got %q", cfg.LTLang)
	}
	if cfg.LTTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.LTTimeout)
	}
	if got := cfg.CORSOrigins(); len(got) != 2 {
		t.Fatalf("expected 2 offline origins, got %v", got)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("LT_ENDPOINT", "http://lt.local/v2/check")
	t.Setenv("CORS_ORIGINS_ONLINE", "https://a.example, https://b.example")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Mode != ModeOnline {
		t.Fatalf("expected online, got %q", cfg.Mode)
	}
	if cfg.LTEndpoint != "http://lt.local/v2/check" {
		t.Fatalf("unexpected endpoint %q", cfg.LTEndpoint)
	}
	if got := cfg.CORSOrigins(); len(got) != 2 {
		t.Fatalf("expected 2 online origins, got %v", got)
	}
}

func TestFromEnvUnknownModeFallsBackToOffline(t *testing.T) {
	t.Setenv("MODE", "weird")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Mode != ModeOffline {
		t.Fatalf("expected offline, got %q", cfg.Mode)
	}
}

func TestFromEnvError(t *testing.T) {
	t.Setenv("LT_TIMEOUT", "not-a-duration")
	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
