// Package config provides configuration loading from a YAML file and
// environment variables. Environment variables take precedence for dev flexibility.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phinze/controlpanel/internal/device"
	"github.com/phinze/controlpanel/internal/panel"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration, assembled from YAML + env.
type Config struct {
	Panel  PanelConfig  `yaml:"panel"`
	Window WindowConfig `yaml:"window"`
	Deck   DeckConfig   `yaml:"deck"`
}

// PanelConfig describes the radial panel's size and look.
type PanelConfig struct {
	Size         int     `yaml:"size"`
	PlateColor   string  `yaml:"plate_color"`
	ShadowColor  string  `yaml:"shadow_color"`
	ShadowOffset float64 `yaml:"shadow_offset"`
	ShadowBlur   float64 `yaml:"shadow_blur"`
	WedgeColor   string  `yaml:"wedge_color"`
	StrokeWidth  float64 `yaml:"stroke_width"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// DeckConfig holds Stream Deck host settings.
type DeckConfig struct {
	Brightness int `yaml:"brightness"`
	// StripX is the left edge of the panel on the touch strip.
	StripX int `yaml:"strip_x"`
	// Key shows the pressed direction; 0 disables it.
	Key int `yaml:"key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Panel: PanelConfig{
			Size:         400,
			PlateColor:   "#ffffff",
			ShadowColor:  "#cdcbdb",
			ShadowOffset: 5,
			ShadowBlur:   1,
			WedgeColor:   "#ffff00",
			StrokeWidth:  2,
		},
		Window: WindowConfig{
			Title:     "Control Panel",
			Resizable: true,
		},
		Deck: DeckConfig{
			Brightness: 80,
			StripX:     350,
			Key:        1,
		},
	}
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "controlpanel")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if p := os.Getenv("CONTROLPANEL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LoadFile assembles configuration from defaults, the YAML file at path (if it
// exists) and environment variables, in increasing precedence.
func LoadFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ReadFile returns defaults overlaid with the YAML file at path, without
// environment overrides. It is what a config editor should start from, so
// that transient overrides are not persisted.
func ReadFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// readFile overlays the YAML file at path onto Default. A missing file is not
// an error.
func readFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("CONTROLPANEL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CONTROLPANEL_SIZE: %w", err)
		}
		cfg.Panel.Size = n
	}
	if v := os.Getenv("CONTROLPANEL_WEDGE_COLOR"); v != "" {
		cfg.Panel.WedgeColor = v
	}
	if v := os.Getenv("CONTROLPANEL_PLATE_COLOR"); v != "" {
		cfg.Panel.PlateColor = v
	}
	if v := os.Getenv("CONTROLPANEL_DECK_BRIGHTNESS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CONTROLPANEL_DECK_BRIGHTNESS: %w", err)
		}
		cfg.Deck.Brightness = n
	}
	return nil
}

// Validate checks value ranges and colors.
func (c *Config) Validate() error {
	if c.Panel.Size <= 0 {
		return fmt.Errorf("panel size must be positive, got %d", c.Panel.Size)
	}
	if _, err := c.Panel.Style(); err != nil {
		return err
	}
	if c.Deck.Brightness < 0 || c.Deck.Brightness > 100 {
		return fmt.Errorf("deck brightness must be 0-100, got %d", c.Deck.Brightness)
	}
	if c.Deck.Key < 0 || c.Deck.Key > device.KeyCount {
		return fmt.Errorf("deck key must be 0-%d, got %d", device.KeyCount, c.Deck.Key)
	}
	return nil
}

// Style converts the panel section into a panel.Style.
func (p PanelConfig) Style() (panel.Style, error) {
	st := panel.DefaultStyle()

	var err error
	if st.PlateColor, err = parseColor("plate_color", p.PlateColor, st.PlateColor); err != nil {
		return st, err
	}
	if st.ShadowColor, err = parseColor("shadow_color", p.ShadowColor, st.ShadowColor); err != nil {
		return st, err
	}
	if st.WedgeColor, err = parseColor("wedge_color", p.WedgeColor, st.WedgeColor); err != nil {
		return st, err
	}

	st.ShadowOffset = panel.Point{X: p.ShadowOffset, Y: p.ShadowOffset}
	st.ShadowBlur = p.ShadowBlur
	if p.StrokeWidth > 0 {
		st.StrokeWidth = p.StrokeWidth
	}
	return st, nil
}

// parseColor parses a hex color, falling back to def when s is empty.
func parseColor(field, s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// WriteFile writes cfg as YAML to path, creating parent directories.
func WriteFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
