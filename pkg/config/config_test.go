package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("log defaults: %+v", cfg.Log)
	}
	if cfg.Dump.Format != "json" || cfg.Dump.MaxFrames != 0 {
		t.Fatalf("dump defaults: %+v", cfg.Dump)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "krpc.yaml")
	data := []byte("log:\n  level: debug\n  format: json\ndump:\n  format: cbor\n  max_frames: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log not applied: %+v", cfg.Log)
	}
	if cfg.Dump.Format != "cbor" || cfg.Dump.MaxFrames != 5 {
		t.Fatalf("dump not applied: %+v", cfg.Dump)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "krpc.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("want error for bad log level")
	}

	if err := os.WriteFile(path, []byte("dump:\n  format: xml\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("want error for bad dump format")
	}
}
