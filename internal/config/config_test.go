package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Dynamics.Enabled {
		t.Error("dynamics should default to enabled")
	}
	if cfg.Dynamics.Generations != 50 {
		t.Errorf("expected 50 generations, got %d", cfg.Dynamics.Generations)
	}
	if cfg.Dynamics.Horizon != 10.0 {
		t.Errorf("expected horizon 10.0, got %f", cfg.Dynamics.Horizon)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("expected rk4, got %s", cfg.Integrator)
	}
	if cfg.Dynamics.Adaptive {
		t.Error("adaptive stepping should default to off")
	}
	if cfg.Dynamics.Tolerance != DefaultTolerance {
		t.Errorf("expected tolerance %g, got %g", DefaultTolerance, cfg.Dynamics.Tolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("input: results.csv\nintegrator: euler\ndynamics:\n  enabled: false\n  generations: 25\n  horizon: 5.0\n  substeps: 4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != "results.csv" {
		t.Errorf("expected input results.csv, got %s", cfg.Input)
	}
	if cfg.Integrator != "euler" {
		t.Errorf("expected euler, got %s", cfg.Integrator)
	}
	if cfg.Dynamics.Enabled {
		t.Error("expected dynamics disabled")
	}
	if cfg.Dynamics.Generations != 25 {
		t.Errorf("expected 25 generations, got %d", cfg.Dynamics.Generations)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dynamics:\n  generations: -1\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative generations")
	}
}

func TestValidateAdaptiveTolerance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dynamics.Adaptive = true
	cfg.Dynamics.Tolerance = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-positive tolerance")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Input = "tournament.csv"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Input != "tournament.csv" {
		t.Errorf("round trip lost input: %s", loaded.Input)
	}
}
