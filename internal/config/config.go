// Package config loads the editor configuration: a YAML file merged onto
// defaults, then CANVASIM_* environment variables as read-only overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/canvasim"
)

// EnvPrefix prefixes every environment override, e.g. CANVASIM_WINDOW_WIDTH
// or CANVASIM_LOGGING_LEVEL.
const EnvPrefix = "CANVASIM"

type WindowConfig struct {
	Title     string `yaml:"title" envconfig:"TITLE"`
	Width     int    `yaml:"width" envconfig:"WIDTH"`
	Height    int    `yaml:"height" envconfig:"HEIGHT"`
	Resizable bool   `yaml:"resizable" envconfig:"RESIZABLE"`
	TPS       int    `yaml:"tps" envconfig:"TPS"`
	HUD       bool   `yaml:"hud" envconfig:"HUD"`
}

type ViewConfig struct {
	ZoomStep   float64 `yaml:"zoom_step" envconfig:"ZOOM_STEP"`
	MinScale   float64 `yaml:"min_scale" envconfig:"MIN_SCALE"`
	MaxScale   float64 `yaml:"max_scale" envconfig:"MAX_SCALE"`
	SelectMode string  `yaml:"select_mode" envconfig:"SELECT_MODE"` // "handles" | "elements"
	Grid       bool    `yaml:"grid" envconfig:"GRID"`
	GridBase   float64 `yaml:"grid_base" envconfig:"GRID_BASE"`
	QuitKey    string  `yaml:"quit_key" envconfig:"QUIT_KEY"` // empty disables
	Debug      bool    `yaml:"debug" envconfig:"DEBUG"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
	Source bool   `yaml:"source" envconfig:"SOURCE"`
	File   string `yaml:"file" envconfig:"FILE"`
}

// Config is the user-editable configuration.
//
// config_version: bump when the structure changes in a backward-incompatible
// way.
type Config struct {
	ConfigVersion int           `yaml:"config_version" ignored:"true"`
	Window        WindowConfig  `yaml:"window" envconfig:"WINDOW"`
	View          ViewConfig    `yaml:"view" envconfig:"VIEW"`
	Logging       LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	// Keys maps action names to key names. From the environment it is
	// written as CANVASIM_KEYS="polygon:P,rectangle:R" and replaces the map.
	Keys map[string]string `yaml:"keys" envconfig:"KEYS"`
}

// Defaults returns the application defaults.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Window:        WindowConfig{Title: "canvasim", Width: 1280, Height: 720, Resizable: true, TPS: 60, HUD: true},
		View: ViewConfig{
			ZoomStep:   canvasim.DefaultZoomStep,
			MinScale:   canvasim.DefaultMinScale,
			MaxScale:   canvasim.DefaultMaxScale,
			SelectMode: "handles",
			Grid:       true,
			GridBase:   100,
			QuitKey:    "Escape",
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Keys:    canvasim.DefaultKeys(),
	}
}

// Load returns the defaults merged with the YAML file at path and then with
// environment overrides. A missing file is not an error; an empty path skips
// the file entirely.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config env overrides: %w", err)
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func normalize(cfg *Config) {
	cfg.View.SelectMode = strings.ToLower(strings.TrimSpace(cfg.View.SelectMode))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.View.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("view.zoom_step %v must be greater than 1", c.View.ZoomStep))
	}
	if c.View.MinScale <= 0 || c.View.MaxScale < c.View.MinScale {
		errs = append(errs, fmt.Errorf("view scale range [%v, %v] is invalid", c.View.MinScale, c.View.MaxScale))
	}
	if _, err := c.SelectMode(); err != nil {
		errs = append(errs, err)
	}
	if c.View.QuitKey != "" {
		if _, ok := canvasim.ParseKey(c.View.QuitKey); !ok {
			errs = append(errs, fmt.Errorf("view.quit_key: unknown key %q", c.View.QuitKey))
		}
	}
	for action, key := range c.Keys {
		if _, ok := canvasim.Actions[action]; !ok {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", action))
		}
		if _, ok := canvasim.ParseKey(key); !ok {
			errs = append(errs, fmt.Errorf("keys.%s: unknown key %q", action, key))
		}
	}
	return errors.Join(errs...)
}

// SelectMode returns the configured select mode.
func (c Config) SelectMode() (canvasim.SelectMode, error) {
	switch c.View.SelectMode {
	case "", "handles":
		return canvasim.SelectHandles, nil
	case "elements":
		return canvasim.SelectElements, nil
	}
	return 0, fmt.Errorf("view.select_mode: unknown mode %q", c.View.SelectMode)
}

// QuitKey returns the configured quit key, or KeyUnknown when disabled.
func (c Config) QuitKey() canvasim.Key {
	k, _ := canvasim.ParseKey(c.View.QuitKey)
	return k
}

// Apply copies the view settings onto a canvas and binds the keys.
func (c Config) Apply(cv *canvasim.Canvas) error {
	v := cv.Viewport()
	v.ZoomStep = c.View.ZoomStep
	v.MinScale = c.View.MinScale
	v.MaxScale = c.View.MaxScale
	mode, err := c.SelectMode()
	if err != nil {
		return err
	}
	v.Mode = mode
	cv.ShowGrid = c.View.Grid
	cv.ShowAxis = c.View.Grid
	cv.GridBase = c.View.GridBase
	cv.QuitKey = c.QuitKey()
	cv.SetDebug(c.View.Debug)
	return cv.BindKeys(c.Keys)
}
