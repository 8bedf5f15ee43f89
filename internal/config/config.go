// Package config loads the viewer configuration from an optional YAML
// file, fills in defaults, and applies environment overrides.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/percept3d/streamview/pkg/filter"
	"github.com/percept3d/streamview/pkg/ui"
)

// Default values.
const (
	DefaultWindowName = "Percept3D"
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultRatio      = 1.2
	DefaultV4L2Device = "/dev/video0"
)

// Capture selects and parameterizes the camera backend.
type Capture struct {
	Backend string `yaml:"backend"` // "opencv" or "v4l2"
	Index   int    `yaml:"index"`   // opencv device index
	Device  string `yaml:"device"`  // v4l2 device path
	Width   int    `yaml:"width"`   // requested v4l2 frame size
	Height  int    `yaml:"height"`
}

// Window configures the display surface. Width and height are the
// resolution the layout is computed from.
type Window struct {
	Name     string `yaml:"name"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Windowed bool   `yaml:"windowed"` // zero value keeps fullscreen
}

// Render holds the panel scale ratio.
type Render struct {
	Ratio float64 `yaml:"ratio"`
}

// Theme overrides parts of the stock look. Zero values keep the
// defaults; colors are "#rrggbb".
type Theme struct {
	Background    string  `yaml:"background"`
	Footer        string  `yaml:"footer"`
	ButtonWidth   int     `yaml:"button_width"`
	ButtonHeight  int     `yaml:"button_height"`
	ButtonMargin  int     `yaml:"button_margin"`
	CornerRadius  int     `yaml:"corner_radius"`
	IconRadius    int     `yaml:"icon_radius"`
	BlendWeight   float64 `yaml:"blend_weight"`
	SelectedBoost int     `yaml:"selected_boost"`

	// Buttons maps a filter name ("red", "green", "blue") to a fill
	// color override.
	Buttons map[string]string `yaml:"buttons"`
}

// Log configures level and the optional rotating file sink.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config is the full viewer configuration.
type Config struct {
	Capture Capture `yaml:"capture"`
	Window  Window  `yaml:"window"`
	Render  Render  `yaml:"render"`
	Theme   Theme   `yaml:"theme"`
	Log     Log     `yaml:"log"`

	// Filter is the selection active at startup: "none" (default),
	// "red", "green" or "blue".
	Filter string `yaml:"filter"`
}

// Default returns the stock configuration: OpenCV camera 0, full
// screen at 1920x1080, 1.2x panel scale, info logs to stdout.
func Default() *Config {
	return &Config{
		Capture: Capture{
			Backend: "opencv",
			Device:  DefaultV4L2Device,
			Width:   1280,
			Height:  720,
		},
		Window: Window{
			Name:   DefaultWindowName,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Render: Render{Ratio: DefaultRatio},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load reads the config file at path, or at $STREAMVIEW_CONFIG when
// path is empty. A missing path yields the defaults. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("STREAMVIEW_CONFIG")
	}

	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "config: open")
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, errors.Wrap(err, "config: decode")
		}
		cfg.fillDefaults()
	}

	cfg.applyEnv()
	return cfg, nil
}

// fillDefaults restores defaults for fields the file left empty.
// Theme fields are left alone: their zero values mean "keep the stock
// look" and are resolved by ApplyTheme.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Capture.Backend == "" {
		c.Capture.Backend = d.Capture.Backend
	}
	if c.Capture.Device == "" {
		c.Capture.Device = d.Capture.Device
	}
	if c.Capture.Width == 0 {
		c.Capture.Width = d.Capture.Width
	}
	if c.Capture.Height == 0 {
		c.Capture.Height = d.Capture.Height
	}
	if c.Window.Name == "" {
		c.Window.Name = d.Window.Name
	}
	if c.Window.Width == 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Render.Ratio == 0 {
		c.Render.Ratio = d.Render.Ratio
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = d.Log.MaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = d.Log.MaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = d.Log.MaxAgeDays
	}
}

// applyEnv overrides fields from STREAMVIEW_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := envInt("STREAMVIEW_CAMERA"); ok {
		c.Capture.Index = v
	}
	if v := os.Getenv("STREAMVIEW_BACKEND"); v != "" {
		c.Capture.Backend = v
	}
	if v := os.Getenv("STREAMVIEW_DEVICE"); v != "" {
		c.Capture.Device = v
	}
	if v := os.Getenv("STREAMVIEW_FILTER"); v != "" {
		c.Filter = v
	}
	if v := os.Getenv("STREAMVIEW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate rejects configurations the session cannot run with.
func (c *Config) Validate() error {
	switch c.Capture.Backend {
	case "opencv", "v4l2":
	default:
		return errors.Errorf("config: unknown capture backend %q", c.Capture.Backend)
	}
	if c.Capture.Index < 0 {
		return errors.Errorf("config: negative camera index %d", c.Capture.Index)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.Ratio <= 0 {
		return errors.Errorf("config: invalid render ratio %v", c.Render.Ratio)
	}
	switch strings.ToLower(c.Filter) {
	case "", "none", "red", "green", "blue":
	default:
		return errors.Errorf("config: unknown startup filter %q", c.Filter)
	}
	if c.Theme.BlendWeight < 0 || c.Theme.BlendWeight > 1 {
		return errors.Errorf("config: blend weight %v outside [0, 1]", c.Theme.BlendWeight)
	}
	if c.Theme.SelectedBoost < 0 || c.Theme.SelectedBoost > 255 {
		return errors.Errorf("config: selected boost %d outside [0, 255]", c.Theme.SelectedBoost)
	}
	return nil
}

// StartupFilter returns the selection configured to be active at
// startup.
func (c *Config) StartupFilter() filter.Selection {
	return filter.Parse(c.Filter)
}

// ApplyTheme merges the configured theme overrides onto base. Fields
// the config left at their zero value keep the base look.
func (c *Config) ApplyTheme(base ui.Theme) (ui.Theme, error) {
	out := base
	t := c.Theme

	if t.Background != "" {
		col, err := parseColor(t.Background)
		if err != nil {
			return ui.Theme{}, err
		}
		out.Background = col
	}
	if t.Footer != "" {
		col, err := parseColor(t.Footer)
		if err != nil {
			return ui.Theme{}, err
		}
		out.FooterFill = col
	}
	if t.ButtonWidth > 0 {
		out.ButtonWidth = t.ButtonWidth
	}
	if t.ButtonHeight > 0 {
		out.ButtonHeight = t.ButtonHeight
	}
	if t.ButtonMargin > 0 {
		out.ButtonMargin = t.ButtonMargin
	}
	if t.CornerRadius > 0 {
		out.CornerRadius = t.CornerRadius
	}
	if t.IconRadius > 0 {
		out.IconRadius = t.IconRadius
	}
	if t.BlendWeight > 0 {
		out.BlendWeight = t.BlendWeight
	}
	if t.SelectedBoost > 0 {
		out.SelectedBoost = uint8(t.SelectedBoost)
	}

	for name, hex := range t.Buttons {
		sel := filter.Parse(name)
		if sel == filter.None {
			return ui.Theme{}, errors.Errorf("config: unknown button %q in theme", name)
		}
		col, err := parseColor(hex)
		if err != nil {
			return ui.Theme{}, err
		}
		for i := range out.Buttons3 {
			if out.Buttons3[i].Sel == sel {
				out.Buttons3[i].Fill = col
			}
		}
	}

	return out, nil
}

// parseColor reads a "#rrggbb" color.
func parseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.Errorf("config: color %q is not #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.Wrapf(err, "config: color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b}, nil
}
