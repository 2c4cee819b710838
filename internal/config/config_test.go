package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must be valid: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Simulation.TickRate != Default().Simulation.TickRate {
		t.Errorf("expected default tick rate, got %d", cfg.Simulation.TickRate)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	body := []byte("simulation:\n  seed: 42\n  world_width: 80\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("seed not applied, got %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.WorldWidth != 80 {
		t.Errorf("world_width not applied, got %d", cfg.Simulation.WorldWidth)
	}
	// Незатронутые поля остаются дефолтными
	if cfg.Simulation.WorldHeight != Default().Simulation.WorldHeight {
		t.Errorf("world_height should stay default, got %d", cfg.Simulation.WorldHeight)
	}
}

func TestValidateRejectsZeroSizedWorld(t *testing.T) {
	cfg := Default()
	cfg.Simulation.WorldWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero-sized world must be rejected at construction time")
	}
}

func TestValidateRejectsZeroTickRate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.TickRate = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero tick rate must be rejected")
	}
}
