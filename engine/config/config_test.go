package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/canopy/engine/colors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.MemoryPath != "vis.json" || cfg.Width != 1024 || !cfg.VSync {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	p := writeConfig(t, `
window:
  title: demo
  width: 640
  vsync: false
  clear_color: "#ff000080"
memory: state.json
font:
  size: 16
debug: true
min_engine: v0.1.0
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "demo" || cfg.Width != 640 || cfg.Height != 768 {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.VSync || !cfg.Debug {
		t.Errorf("vsync %v debug %v", cfg.VSync, cfg.Debug)
	}
	if cfg.ClearColor != colors.RGBA8(255, 0, 0, 128) {
		t.Errorf("clear colour = %v", cfg.ClearColor)
	}
	if cfg.MemoryPath != "state.json" || cfg.ThemePath != "theme.toml" || cfg.FontSize != 16 {
		t.Errorf("paths %q %q size %v", cfg.MemoryPath, cfg.ThemePath, cfg.FontSize)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		body string
		want string
	}{
		"bad yaml":      {"window: [", "failed to parse"},
		"bad colour":    {"window:\n  clear_color: red\n", "clear_color"},
		"negative size": {"window:\n  width: -1\n", "negative"},
		"newer engine":  {"min_engine: v9.0.0\n", "needs engine"},
		"not a version": {"min_engine: latest\n", "semantic version"},
		"negative font": {"font:\n  size: -2\n", "font.size"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
