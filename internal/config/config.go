package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sant0-9/lpg/internal/form"
	"github.com/sant0-9/lpg/internal/prompt"
	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the config directory.
const EnvConfigDir = "LPG_CONFIG_DIR"

const (
	configFile = "config.yaml"
	stateFile  = "state.yaml"
	logFile    = "lpg.log"
)

type Config struct {
	Variant   prompt.Variant `yaml:"variant"`
	InputMode form.InputMode `yaml:"input_mode"`
	Defaults  Defaults       `yaml:"defaults"`

	HighlightDelay string `yaml:"highlight_delay"`
	CopiedFlash    string `yaml:"copied_flash"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:        prompt.VariantCourse,
		InputMode:      form.InputUpload,
		Defaults:       DefaultDefaults(),
		HighlightDelay: "100ms",
		CopiedFlash:    "2s",
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lpg"), nil
}

func ConfigPath() (string, error) {
	return inDir(configFile)
}

// StatePath is where the persisted source text lives.
func StatePath() (string, error) {
	return inDir(stateFile)
}

// LogPath returns Log.File, or the default log file in the config dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return inDir(logFile)
}

func inDir(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Exists reports whether a config file has been saved.
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. It returns nil, nil when there is none yet,
// which the UI treats as a first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// HighlightDelayDuration parses HighlightDelay.
func (c *Config) HighlightDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.HighlightDelay)
	return d
}

// CopiedFlashDuration parses CopiedFlash.
func (c *Config) CopiedFlashDuration() time.Duration {
	d, _ := time.ParseDuration(c.CopiedFlash)
	return d
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.HighlightDelay); err != nil {
		return fmt.Errorf("invalid highlight_delay: %w", err)
	}
	if _, err := time.ParseDuration(c.CopiedFlash); err != nil {
		return fmt.Errorf("invalid copied_flash: %w", err)
	}
	if c.Defaults.Unit < 1 {
		return fmt.Errorf("invalid defaults.unit %d: must be positive", c.Defaults.Unit)
	}
	return nil
}
