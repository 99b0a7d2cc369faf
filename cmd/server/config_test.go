package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_SetsDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.ListenAddress != ":8080" {
		t.Errorf("listen address = %q, want :8080", cfg.Server.ListenAddress)
	}
	if cfg.Server.MetricsAddress != ":9090" {
		t.Errorf("metrics address = %q, want :9090", cfg.Server.MetricsAddress)
	}
	if cfg.Server.SessionTTL != 8*time.Hour {
		t.Errorf("session ttl = %v, want 8h", cfg.Server.SessionTTL)
	}
	if cfg.Server.LoginsPerMinute != 10 {
		t.Errorf("logins per minute = %d, want 10", cfg.Server.LoginsPerMinute)
	}
}

func TestConfigValidate_RequiresBackendURL(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error without backend.url")
	}

	cfg.Backend.URL = "http://api.internal:8000"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
}

func TestConfigValidate_RejectsMissingPolicyFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend.URL = "http://api.internal:8000"
	cfg.Policy.File = filepath.Join(t.TempDir(), "missing.yaml")

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing policy file")
	}
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_address: ":9000"
  session_ttl: 2h
  logins_per_minute: 5
backend:
  url: "http://api.internal:8000"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.ListenAddress != ":9000" {
		t.Errorf("listen address = %q, want :9000", cfg.Server.ListenAddress)
	}
	if cfg.Server.SessionTTL != 2*time.Hour {
		t.Errorf("session ttl = %v, want 2h", cfg.Server.SessionTTL)
	}
	if cfg.Server.LoginsPerMinute != 5 {
		t.Errorf("logins per minute = %d, want 5", cfg.Server.LoginsPerMinute)
	}
	// Unset fields fall back to defaults.
	if cfg.Server.MetricsAddress != ":9090" {
		t.Errorf("metrics address = %q, want default :9090", cfg.Server.MetricsAddress)
	}
}
