package ui

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/geom"
)

// themeFile mirrors theme.toml. Every field is optional.
type themeFile struct {
	FontSize *float64    `toml:"font_size"`
	Pad      *[2]float64 `toml:"pad"`
	Colors   struct {
		Dark  string `toml:"dark"`
		Light string `toml:"light"`
		Acc1  string `toml:"acc1"`
		Acc2  string `toml:"acc2"`
		Acc3  string `toml:"acc3"`
	} `toml:"colors"`
}

// LoadTheme applies the overrides in the TOML file at path on top of base.
// A missing file is not an error; base is returned unchanged.
func LoadTheme(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return base, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	s := base
	if tf.FontSize != nil {
		if *tf.FontSize <= 0 {
			return base, fmt.Errorf("%s: font_size must be positive, got %v", path, *tf.FontSize)
		}
		s.FontSize = *tf.FontSize
	}
	if tf.Pad != nil {
		s.Pad = geom.LS(tf.Pad[0], tf.Pad[1])
	}
	for _, c := range []struct {
		name string
		hex  string
		dst  *colors.Color
	}{
		{"dark", tf.Colors.Dark, &s.Dark},
		{"light", tf.Colors.Light, &s.Light},
		{"acc1", tf.Colors.Acc1, &s.Acc1},
		{"acc2", tf.Colors.Acc2, &s.Acc2},
		{"acc3", tf.Colors.Acc3, &s.Acc3},
	} {
		if c.hex == "" {
			continue
		}
		col, err := colors.Hex(c.hex)
		if err != nil {
			return base, fmt.Errorf("%s: colors.%s: %w", path, c.name, err)
		}
		*c.dst = col
	}
	return s, nil
}
