package ebitenview

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/canopy"
)

// RunConfig configures the window and game loop started by Run.
type RunConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`

	// TPS is the update rate. Zero keeps Ebitengine's default.
	TPS int `toml:"tps"`

	// ClearColor fills the screen before the stage draws.
	ClearColor canopy.Color `toml:"clear_color"`

	// ScriptPath, when set, loads an input script and attaches it to the
	// stage before the first frame.
	ScriptPath string `toml:"script"`

	// ScreenshotDir is where screenshot requests are written.
	ScreenshotDir string `toml:"screenshot_dir"`

	ShowFPS bool `toml:"show_fps"`
	Debug   bool `toml:"debug"`
}

// DefaultRunConfig returns the configuration used for zero fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "canopy",
		Width:         640,
		Height:        480,
		ClearColor:    canopy.Color{A: 1},
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads a TOML file on top of DefaultRunConfig.
//
//	title = "fade"
//	width = 1024
//	height = 768
//	clear_color = { r = 0.1, g = 0.1, b = 0.1, a = 1 }
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	return ParseRunConfig(data)
}

// ParseRunConfig decodes TOML data on top of DefaultRunConfig. Unknown keys
// are an error.
func ParseRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative window size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("negative tps %d", c.TPS)
	}
	return nil
}

// withDefaults fills zero fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}
