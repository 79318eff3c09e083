// Package config handles spectraplot configuration loading.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spectraplot/spectraplot/pkg/errors"
)

// Config is the root configuration structure.
type Config struct {
	Figure    FigureConfig    `yaml:"figure"`
	Output    OutputConfig    `yaml:"output"`
	Resources ResourcesConfig `yaml:"resources"`
	Shell     ShellConfig     `yaml:"shell"`
}

// FigureConfig holds default figure geometry.
type FigureConfig struct {
	// Width and Height are the figure size in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// DPI is the raster resolution for PNG output.
	DPI float64 `yaml:"dpi"`
}

// OutputConfig holds plot output settings.
type OutputConfig struct {
	// Directory receives rendered plots when no explicit path is given.
	Directory string `yaml:"directory"`

	// Format selects the default output format: png or svg.
	Format string `yaml:"format"`

	// Viewer opens rendered plots in the interactive window instead of
	// writing files when no output path is given.
	Viewer bool `yaml:"viewer"`
}

// ResourcesConfig locates bundled bitmap resources.
type ResourcesConfig struct {
	// Dir holds the chromaticity diagram background bitmaps. Empty means
	// diagrams are drawn without a background.
	Dir string `yaml:"dir"`
}

// ShellConfig holds interactive shell settings.
type ShellConfig struct {
	// HistoryFile stores the readline history. Empty disables history.
	HistoryFile string `yaml:"history_file"`
}

// validFormats are the recognized output formats.
var validFormats = []string{"png", "svg"}

// Default returns the default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Figure: FigureConfig{
			Width:  14,
			Height: 7,
			DPI:    96,
		},
		Output: OutputConfig{
			Directory: ".",
			Format:    "png",
			Viewer:    true,
		},
		Shell: ShellConfig{
			HistoryFile: filepath.Join(home, ".config", "spectraplot", "history"),
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigNotFound,
			errors.CategoryConfig, "failed to read config").
			WithContext("path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParseFailed,
			errors.CategoryConfig, "failed to parse config").
			WithContext("path", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) validate() error {
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return errors.New(errors.ErrConfigInvalid, errors.CategoryConfig,
			"figure size must be positive").
			WithContext("field", "figure.width, figure.height")
	}
	if c.Figure.DPI <= 0 {
		return errors.New(errors.ErrConfigInvalid, errors.CategoryConfig,
			"figure dpi must be positive").
			WithContext("field", "figure.dpi")
	}
	if !isValidOption(c.Output.Format, validFormats) {
		return errors.New(errors.ErrConfigInvalid, errors.CategoryConfig,
			"unrecognized output format").
			WithContext("field", "output.format").
			WithContext("value", c.Output.Format).
			WithContext("valid_options", strings.Join(validFormats, ", "))
	}
	if c.Resources.Dir != "" {
		if info, err := os.Stat(c.Resources.Dir); err != nil || !info.IsDir() {
			return errors.New(errors.ErrConfigInvalid, errors.CategoryConfig,
				"resources dir is not a directory").
				WithContext("field", "resources.dir").
				WithContext("value", c.Resources.Dir)
		}
	}
	return nil
}

func isValidOption(value string, valid []string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfigWriteFailed,
			errors.CategoryConfig, "failed to create config directory").
			WithContext("path", dir)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWriteFailed,
			errors.CategoryConfig, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigWriteFailed,
			errors.CategoryConfig, "failed to write config file").
			WithContext("path", path)
	}
	return nil
}

// DefaultConfigPath returns the default config file path:
// ~/.config/spectraplot/config.yaml, with a config.yaml in the working
// directory taking precedence.
func DefaultConfigPath() string {
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "spectraplot", "config.yaml")
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := Default()
	if err := cfg.Save(path); err != nil {
		return errors.Wrap(err, errors.ErrConfigInitFailed,
			errors.CategoryConfig, "failed to initialize config").
			WithContext("path", path)
	}
	return nil
}
