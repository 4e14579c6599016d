package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("API_ADDR", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg := Load()
	if cfg.Model != defaultModel {
		t.Errorf("expected default model %q, got %q", defaultModel, cfg.Model)
	}
	if cfg.APIAddr != defaultAPIAddr {
		t.Errorf("expected default address %q, got %q", defaultAPIAddr, cfg.APIAddr)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Errorf("expected default timeout %s, got %s", defaultTimeout, cfg.RequestTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("API_ADDR", ":8081")
	t.Setenv("REQUEST_TIMEOUT", "45s")

	cfg := Load()
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected model override, got %q", cfg.Model)
	}
	if cfg.APIAddr != ":8081" {
		t.Errorf("expected address override, got %q", cfg.APIAddr)
	}
	if cfg.RequestTimeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.RequestTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	if cfg := Load(); cfg.RequestTimeout != defaultTimeout {
		t.Errorf("invalid timeout must fall back to %s, got %s", defaultTimeout, cfg.RequestTimeout)
	}
}
