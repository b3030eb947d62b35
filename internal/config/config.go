// Package config holds the settings shared by the thumbnail server and the
// batch CLI. Values come from DefaultConfig, optionally overlaid with a TOML
// file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/youruser/cookthumb/internal/fonts"
	"github.com/youruser/cookthumb/internal/thumbnail"
)

// Config is the complete configuration.
type Config struct {
	Layout thumbnail.Options `toml:"layout"`
	Fonts  FontConfig        `toml:"fonts"`
	Server ServerConfig      `toml:"server"`
	Batch  BatchConfig       `toml:"batch"`
}

// FontConfig locates the font files. Empty paths mean the embedded Go fonts,
// which only the server accepts.
type FontConfig struct {
	Serif     string      `toml:"serif"`
	SansSerif string      `toml:"sans_serif"`
	Sizes     fonts.Sizes `toml:"sizes"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// AssetsDir is where relative preview images are looked up.
	AssetsDir string `toml:"assets_dir"`
}

// BatchConfig configures the batch generator.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: thumbnail.DefaultOptions(),
		Fonts:  FontConfig{Sizes: fonts.DefaultSizes()},
		Server: ServerConfig{Addr: ":8080", AssetsDir: "static"},
		Batch:  BatchConfig{Workers: 4},
	}
}

// Load overlays the TOML file at path onto Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a thumbnail.
func (c Config) Validate() error {
	h := c.Layout.Heading
	switch {
	case h.MaxWidth <= 0:
		return errors.New("layout.heading.max_width must be positive")
	case h.MaxLines <= 0:
		return errors.New("layout.heading.max_lines must be positive")
	case h.LineHeight <= 0:
		return errors.New("layout.heading.line_height must be positive")
	case c.Layout.Logo.Path == "":
		return errors.New("layout.logo.path is required")
	case c.Layout.Logo.Width <= 0 || c.Layout.Logo.Height <= 0:
		return errors.New("layout.logo width and height must be positive")
	case c.Fonts.Sizes.Heading <= 0 || c.Fonts.Sizes.Label <= 0 || c.Fonts.Sizes.Value <= 0:
		return errors.New("fonts.sizes must be positive")
	case c.Layout.MaxSourceBytes < 0 || c.Layout.MaxSourcePixels < 0:
		return errors.New("layout.max_source_bytes and max_source_pixels must not be negative")
	case c.Batch.Workers <= 0:
		return errors.New("batch.workers must be positive")
	}
	return nil
}

// LoadFonts loads the configured font files, or the embedded fonts when
// allowEmbedded is set and no paths are configured.
func (c Config) LoadFonts(allowEmbedded bool) (*fonts.Set, error) {
	if c.Fonts.Serif == "" && c.Fonts.SansSerif == "" && allowEmbedded {
		return fonts.Embedded(), nil
	}
	if c.Fonts.Serif == "" || c.Fonts.SansSerif == "" {
		return nil, errors.New("both a serif and a sans-serif font are required")
	}
	return fonts.LoadSet(c.Fonts.Serif, c.Fonts.SansSerif)
}
