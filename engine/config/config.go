// Package config reads the optional canopy.yaml that sets up a run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/memory"
)

// DefaultPath is the config file looked up when no -config flag is given.
const DefaultPath = "canopy.yaml"

// EngineVersion is compared against a config's min_engine.
const EngineVersion = "v0.1.0"

// File mirrors canopy.yaml. Every field is optional.
type File struct {
	Window    WindowConfig `yaml:"window"`
	Memory    string       `yaml:"memory,omitempty"`
	Theme     string       `yaml:"theme,omitempty"`
	Font      FontConfig   `yaml:"font"`
	Debug     *bool        `yaml:"debug,omitempty"`
	MinEngine string       `yaml:"min_engine,omitempty"`
}

type WindowConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	VSync      *bool  `yaml:"vsync,omitempty"`
	ClearColor string `yaml:"clear_color,omitempty"`
}

type FontConfig struct {
	Path string  `yaml:"path,omitempty"`
	Size float64 `yaml:"size,omitempty"`
}

// Default is the config used when no file exists.
func Default() core.Config {
	return core.Config{
		Title:      "canopy",
		Width:      1024,
		Height:     768,
		VSync:      true,
		ClearColor: [4]float32{0.05, 0.05, 0.06, 1},
		MemoryPath: memory.DefaultPath,
		ThemePath:  "theme.toml",
		FontSize:   12,
	}
}

// Load reads path if present and applies it over Default.
func Load(path string) (core.Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := f.apply(&cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (f *File) apply(cfg *core.Config) error {
	if v := strings.TrimSpace(f.MinEngine); v != "" {
		if !semver.IsValid(v) {
			return fmt.Errorf("min_engine %q is not a semantic version", v)
		}
		if semver.Compare(EngineVersion, v) < 0 {
			return fmt.Errorf("needs engine %s, this is %s", v, EngineVersion)
		}
	}

	w := f.Window
	if t := strings.TrimSpace(w.Title); t != "" {
		cfg.Title = t
	}
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", w.Width, w.Height)
	}
	if w.Width > 0 {
		cfg.Width = w.Width
	}
	if w.Height > 0 {
		cfg.Height = w.Height
	}
	if w.VSync != nil {
		cfg.VSync = *w.VSync
	}
	if w.ClearColor != "" {
		c, err := colors.Hex(w.ClearColor)
		if err != nil {
			return fmt.Errorf("window.clear_color: %w", err)
		}
		cfg.ClearColor = c
	}

	if f.Memory != "" {
		cfg.MemoryPath = f.Memory
	}
	if f.Theme != "" {
		cfg.ThemePath = f.Theme
	}
	cfg.FontPath = f.Font.Path
	if f.Font.Size < 0 {
		return fmt.Errorf("font.size %v is negative", f.Font.Size)
	}
	if f.Font.Size > 0 {
		cfg.FontSize = f.Font.Size
	}
	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
	return nil
}
