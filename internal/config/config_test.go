package config

import (
	"os"
	"path/filepath"
	"testing"

	"output-floor/internal/floor"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_ProfileFileOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
profile:
  name: Preset Bank
  credit_rwa: 100
  equity_rwa: 20
  operational_rwa: 30
  market_rwa: 40
  cva_rwa: 10
  internal_model_rwa: 120
  internal_model_cost: 20
`)
	cfgPath := writeFile(t, dir, "config.yaml", `
profile_file: preset.yaml
profile:
  internal_model_cost: 60
floor:
  ratio: 0.65
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Profile.Name != "Preset Bank" {
		t.Errorf("name: got %q", cfg.Profile.Name)
	}
	if cfg.Profile.CreditRWA != 100 {
		t.Errorf("preset field lost: credit %v", cfg.Profile.CreditRWA)
	}
	if cfg.Profile.InternalModelCost != 60 {
		t.Errorf("override lost: cost %v", cfg.Profile.InternalModelCost)
	}
	if cfg.Ratio() != 0.65 {
		t.Errorf("ratio: got %v, want 0.65", cfg.Ratio())
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `
profile:
  credit_rwa: 100
  internal_model_rwa: 50
`)
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Ratio() != floor.DefaultRatio {
		t.Errorf("ratio should default to %v, got %v", floor.DefaultRatio, cfg.Ratio())
	}
	steps := cfg.Schedule()
	if len(steps) != len(floor.DefaultSchedule()) {
		t.Errorf("schedule should default to the BCBS timetable, got %d steps", len(steps))
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"negative-rwa", "profile:\n  credit_rwa: -1\n"},
		{"bad-ratio", "floor:\n  ratio: 1.5\n"},
		{"bad-schedule", "floor:\n  schedule:\n    - { year: 2025, ratio: 2 }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".yaml", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected load to fail")
			}
		})
	}
}

func TestMergeProfile(t *testing.T) {
	base := ProfileConfig{Name: "base", CreditRWA: 100, MarketRWA: 40}
	override := ProfileConfig{MarketRWA: 55, InternalModelRWA: 70}

	out := MergeProfile(base, override)
	if out.Name != "base" || out.CreditRWA != 100 {
		t.Errorf("base fields lost: %+v", out)
	}
	if out.MarketRWA != 55 || out.InternalModelRWA != 70 {
		t.Errorf("override fields lost: %+v", out)
	}
}
