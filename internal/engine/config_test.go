package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skirmish-server/internal/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 10 || cfg.Height != 10 || cfg.Starts != 1 || cfg.Finishes != 1 {
		t.Errorf("unexpected grid defaults: %+v", cfg)
	}
	if cfg.MaxTurns != 1000 || cfg.TickDelay != 100*time.Millisecond {
		t.Errorf("unexpected loop defaults: %+v", cfg)
	}
	if cfg.Rules != domain.DefaultRules() {
		t.Errorf("rules must default to DefaultRules")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skirmish.yaml")
	data := []byte(`
seed: 42
width: 16
starts: 2
maxTurns: 300
tickDelay: 250ms
rules:
  defenderDamage: 3
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 42 || cfg.Width != 16 || cfg.Height != DefaultHeight || cfg.Starts != 2 {
		t.Errorf("grid overlay wrong: %+v", cfg)
	}
	if cfg.MaxTurns != 300 || cfg.TickDelay != 250*time.Millisecond {
		t.Errorf("loop overlay wrong: %+v", cfg)
	}
	if cfg.Rules.DefenderDamage != 3 || cfg.Rules.WalkerLife != domain.DefaultWalkerLife {
		t.Errorf("rules overlay wrong: %+v", cfg.Rules)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected parse error")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("width: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(tiny); err == nil {
		t.Error("expected validation error for a 2-wide grid")
	}
}

func TestLoadConfig_RejectsBadRules(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		yaml string
	}{
		{"dead walkers", "rules:\n  walkerLife: 0\n"},
		{"negative range", "rules:\n  defenderRange: -1\n"},
		{"odds above one", "rules:\n  walkerSpawnChance: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "rules.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); !errors.Is(err, domain.ErrInvalidRules) {
				t.Errorf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}
