// Package config loads the optional YAML configuration of geoclip.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log  LogConfig  `yaml:"log"`
	View ViewConfig `yaml:"view"`
	Clip ClipConfig `yaml:"clip"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type ViewConfig struct {
	Zoom float64 `yaml:"zoom"`
	// Mercator starts the viewer in spherical mercator.
	Mercator bool `yaml:"mercator"`
	// ClipToViewport clips the dataset to the visible box before drawing.
	ClipToViewport bool `yaml:"clip_to_viewport"`
}

type ClipConfig struct {
	// Format is wkt or geojson.
	Format        string `yaml:"format"`
	KeepContained bool   `yaml:"keep_contained"`
}

func Default() *Config {
	return &Config{
		Log:  LogConfig{Level: "info"},
		View: ViewConfig{Zoom: 1, ClipToViewport: true},
		Clip: ClipConfig{Format: "wkt", KeepContained: true},
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read file %v", path)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %v", path)
	}
	return cfg, nil
}

// Parse decodes data into cfg, keeping the fields data does not set, and
// validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "yaml unmarshal")
	}
	return Validate(cfg)
}

func Validate(c *Config) error {
	if err := validateLog(&c.Log); err != nil {
		return errors.Wrap(err, "validate `log`")
	}
	if err := validateView(&c.View); err != nil {
		return errors.Wrap(err, "validate `view`")
	}
	if err := validateClip(&c.Clip); err != nil {
		return errors.Wrap(err, "validate `clip`")
	}
	return nil
}

func validateLog(c *LogConfig) error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	return nil
}

func validateView(c *ViewConfig) error {
	if c.Zoom <= 0 {
		return errors.Errorf("invalid value of field `zoom`: %v", c.Zoom)
	}
	return nil
}

func validateClip(c *ClipConfig) error {
	switch c.Format {
	case "wkt", "geojson":
		return nil
	}
	return errors.Errorf("invalid value of field `format`: %q", c.Format)
}
