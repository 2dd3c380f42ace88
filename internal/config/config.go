// Package config loads hexrail settings from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/render/board"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
	"github.com/matzehuels/hexrail/pkg/errors"
	"github.com/matzehuels/hexrail/pkg/session"
)

// Config holds all settings.
type Config struct {
	Grid   GridConfig   `toml:"grid" yaml:"grid"`
	Canvas CanvasConfig `toml:"canvas" yaml:"canvas"`
	Render RenderConfig `toml:"render" yaml:"render"`
	Server ServerConfig `toml:"server" yaml:"server"`
}

// GridConfig sets the board size.
type GridConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// CanvasConfig sets the drawing area; the board is centred on it.
type CanvasConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	Style string  `toml:"style" yaml:"style"`
	Scale float64 `toml:"scale" yaml:"scale"` // PNG only
}

// ServerConfig holds HTTP editor settings.
type ServerConfig struct {
	Addr       string        `toml:"addr" yaml:"addr"`
	SessionTTL time.Duration `toml:"session_ttl" yaml:"session_ttl"`
}

// Defaults.
const (
	DefaultAddr  = "localhost:8080"
	DefaultScale = 1.0
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a .toml, .yaml or .yml file. An empty path
// returns [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse config file")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown config keys: %v", undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse config file")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config extension %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Width == 0 {
		c.Grid.Width = grid.DefaultSize
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = grid.DefaultSize
	}
	if c.Canvas.Width == 0 {
		c.Canvas.Width = board.DefaultCanvasWidth
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = board.DefaultCanvasHeight
	}
	if c.Render.Style == "" {
		c.Render.Style = string(rail.StyleLanes)
	}
	if c.Render.Scale == 0 {
		c.Render.Scale = DefaultScale
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.SessionTTL == 0 {
		c.Server.SessionTTL = session.DefaultTTL
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := errors.ValidateGridSize(c.Grid.Width, c.Grid.Height); err != nil {
		return err
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas %vx%v must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := rail.ParseStyle(c.Render.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "render.style")
	}
	if c.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.scale must be positive, got %v", c.Render.Scale)
	}
	if c.Server.SessionTTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.session_ttl must not be negative")
	}
	return nil
}

// Style returns the parsed rail style.
func (c *Config) Style() rail.Style {
	s, err := rail.ParseStyle(c.Render.Style)
	if err != nil {
		return rail.StyleLanes
	}
	return s
}

// BoardOptions converts the drawing settings to board render options.
func (c *Config) BoardOptions() []board.Option {
	return []board.Option{
		board.WithStyle(c.Style()),
		board.WithCanvas(c.Canvas.Width, c.Canvas.Height),
	}
}

// NewGrid returns an empty board of the configured size.
func (c *Config) NewGrid() *grid.Grid {
	return grid.New(c.Grid.Width, c.Grid.Height)
}
