package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected theme %s, got %s", DefaultTheme, cfg.Theme)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Error("default size should be zero for terminal detection")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 80 || cfg.Height != 24 {
		t.Errorf("expected 80x24, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glimmer.yaml")

	want := &Config{Width: 100, Height: 30, FPS: 40, Seed: 7, Theme: "ocean"}
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("width: 64\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 64 {
		t.Errorf("expected width 64, got %d", cfg.Width)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected default fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme %s, got %s", DefaultTheme, cfg.Theme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
