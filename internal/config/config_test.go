package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.RosettaURL != DefaultRosettaURL {
		t.Errorf("RosettaURL = %q, want %q", cfg.RosettaURL, DefaultRosettaURL)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `{
		"host": "127.0.0.1",
		"port": 9000,
		"rosetta_url": "http://rosetta.test/api",
		"request_timeout": "5s",
		"log_level": "debug"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 9000 {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.RosettaURL != "http://rosetta.test/api" {
		t.Errorf("RosettaURL = %q", cfg.RosettaURL)
	}
	if time.Duration(cfg.RequestTimeout) != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATSEARCH_PORT", "9999")
	t.Setenv("CATSEARCH_ROSETTA_URL", "http://override.test")
	t.Setenv("CATSEARCH_REQUEST_TIMEOUT", "2s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.RosettaURL != "http://override.test" {
		t.Errorf("RosettaURL = %q", cfg.RosettaURL)
	}
	if time.Duration(cfg.RequestTimeout) != 2*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("CATSEARCH_PORT", "70000")
	if _, err := Load(""); err == nil {
		t.Fatal("Load() accepted an out-of-range port")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed JSON")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"1m30s"` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	var parsed Duration
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if parsed != d {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
}
