package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UserName != "Alex" {
		t.Errorf("expected default user name 'Alex', got %q", cfg.UserName)
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
	if !cfg.MCP.Enabled {
		t.Error("expected MCP enabled by default")
	}
	if cfg.Theme.ColorAccent == "" {
		t.Error("expected a default accent color")
	}
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	want := filepath.Join(home, ".todo", "config.toml")
	if path != want {
		t.Errorf("GetConfigPath() = %q, want %q", path, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UserName = "Sam"
	cfg.Notifications.Enabled = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.UserName != "Sam" {
		t.Errorf("expected user name 'Sam', got %q", loaded.UserName)
	}
	if loaded.Notifications.Enabled {
		t.Error("expected notifications disabled after round trip")
	}
	if loaded.Theme.IconCheckDone != cfg.Theme.IconCheckDone {
		t.Errorf("expected icon %q, got %q", cfg.Theme.IconCheckDone, loaded.Theme.IconCheckDone)
	}
}

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UserName != "Alex" {
		t.Errorf("expected default user name on first run, got %q", cfg.UserName)
	}
}

func TestThemeConfig_CategoryColor(t *testing.T) {
	theme := DefaultThemeConfig()

	tests := []struct {
		category string
		want     string
	}{
		{"Work", theme.ColorWork},
		{"Personal", theme.ColorPersonal},
		{"Fitness", theme.ColorFitness},
		{"", theme.ColorDim},
		{"Unknown", theme.ColorDim},
	}

	for _, tt := range tests {
		if got := theme.CategoryColor(tt.category); got != tt.want {
			t.Errorf("CategoryColor(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
