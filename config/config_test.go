package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Execution.MaxCycles != 10_000_000 {
		t.Errorf("MaxCycles = %d, want 10000000", cfg.Execution.MaxCycles)
	}
	if cfg.Execution.EntryPoint != "0x00000000" {
		t.Errorf("EntryPoint = %s, want 0x00000000", cfg.Execution.EntryPoint)
	}
	if !cfg.Execution.StrictAlign {
		t.Error("expected StrictAlign=true by default")
	}

	if cfg.Debugger.HistorySize != 1000 {
		t.Errorf("HistorySize = %d, want 1000", cfg.Debugger.HistorySize)
	}
	if cfg.Trace.MaxEntries != 100_000 {
		t.Errorf("MaxEntries = %d, want 100000", cfg.Trace.MaxEntries)
	}
	if cfg.API.Enabled {
		t.Error("expected API disabled by default")
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Execution.MaxCycles != DefaultConfig().Execution.MaxCycles {
		t.Fatal("expected defaults when config file is absent")
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumbsim.toml")

	cfg := DefaultConfig()
	cfg.Execution.MaxCycles = 42
	cfg.API.Enabled = true
	cfg.API.ListenAddr = "0.0.0.0:9000"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Execution.MaxCycles != 42 {
		t.Errorf("MaxCycles = %d, want 42", loaded.Execution.MaxCycles)
	}
	if !loaded.API.Enabled || loaded.API.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("API section not round-tripped: %+v", loaded.API)
	}
}
