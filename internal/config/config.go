// Package config loads the settings of the svgpath command from TOML or YAML
// files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/svgpath"
)

type Config struct {
	Write  Write  `toml:"write" yaml:"write"`
	Log    Log    `toml:"log" yaml:"log"`
	Render Render `toml:"render" yaml:"render"`
	// Number of inputs processed concurrently.
	Jobs int `toml:"jobs" yaml:"jobs"`
}

// Write holds the serializer settings. See svgpath.WriteOptions for their
// meaning.
type Write struct {
	RemoveLeadingZero  bool                  `toml:"remove_leading_zero" yaml:"remove_leading_zero"`
	Compact            bool                  `toml:"compact" yaml:"compact"`
	JoinArcFlags       bool                  `toml:"join_arc_flags" yaml:"join_arc_flags"`
	Dedupe             bool                  `toml:"dedupe" yaml:"dedupe"`
	ImplicitLineTo     bool                  `toml:"implicit_lineto" yaml:"implicit_lineto"`
	SimplifyTransforms bool                  `toml:"simplify_transforms" yaml:"simplify_transforms"`
	Separator          svgpath.ListSeparator `toml:"separator" yaml:"separator"`
}

type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

type Render struct {
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	Fill    string `toml:"fill" yaml:"fill"`
	EvenOdd bool   `toml:"even_odd" yaml:"even_odd"`
	// Margin around the path, in pixels.
	Padding float64 `toml:"padding" yaml:"padding"`
	// Maximum distance between an arc and its approximation by cubic
	// Béziers.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
}

// Options converts the settings to svgpath.WriteOptions.
func (w Write) Options() svgpath.WriteOptions {
	return svgpath.WriteOptions{
		RemoveLeadingZero:            w.RemoveLeadingZero,
		UseCompactPathNotation:       w.Compact,
		JoinArcToFlags:               w.JoinArcFlags,
		RemoveDuplicatedPathCommands: w.Dedupe,
		UseImplicitLineToCommands:    w.ImplicitLineTo,
		SimplifyTransformMatrices:    w.SimplifyTransforms,
		ListSeparator:                w.Separator,
	}
}

func Default() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Render: Render{
			Width:     256,
			Height:    256,
			Fill:      "#000000",
			Padding:   8,
			Tolerance: 0.1,
		},
		Jobs: 4,
	}
}

// Load reads the file at path on top of the defaults. The format follows the
// extension: .toml, or .yaml and .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "couldn't read config")
	}
	cfg, err := Decode(bytes.NewReader(data), filepath.Ext(path))
	if err != nil {
		return Config{}, errors.Wrapf(err, "couldn't load %s", path)
	}
	return cfg, nil
}

// Decode reads a configuration in the format named by ext on top of the
// defaults. Unknown fields are an error.
func Decode(r io.Reader, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "invalid TOML")
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves the defaults alone.
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(err, "invalid YAML")
		}
	default:
		return Config{}, errors.Errorf("unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that are out of range.
func (cfg Config) Validate() error {
	switch {
	case cfg.Jobs < 1:
		return errors.Errorf("jobs must be at least 1, got %d", cfg.Jobs)
	case cfg.Render.Width < 1 || cfg.Render.Height < 1:
		return errors.Errorf("render size must be positive, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	case cfg.Render.Padding < 0:
		return errors.Errorf("render padding must not be negative, got %g", cfg.Render.Padding)
	case cfg.Render.Tolerance <= 0:
		return errors.Errorf("render tolerance must be positive, got %g", cfg.Render.Tolerance)
	}
	return nil
}
