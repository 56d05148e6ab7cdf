package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, "default_device = \"Headphones\"\nquiet = true\nlog_level = \"debug\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultDevice != "Headphones" || !cfg.Quiet || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("log format should keep its default, got %q", cfg.LogFormat)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []string{
		"log_format = \"xml\"\n",
		"log_level = \"loud\"\n",
		"quiet = \"yes\"\n", // type mismatch
	}
	for _, contents := range tests {
		path := writeConfig(t, contents)
		if _, err := Load(path); err == nil {
			t.Errorf("Load accepted %q", strings.TrimSpace(contents))
		}
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "warn" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
