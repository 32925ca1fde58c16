package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file
const (
	EnvLanguage  = "ZONECLOCK_LANGUAGE"
	EnvStartView = "ZONECLOCK_START_VIEW"
	EnvStateDir  = "ZONECLOCK_STATE_DIR"
	EnvLogFile   = "ZONECLOCK_LOG_FILE"
)

// Config represents the application configuration
type Config struct {
	// Language overrides the locale reported by the environment
	Language  string `yaml:"language,omitempty" validate:"omitempty,max=35"`
	StartView string `yaml:"start_view" validate:"required,startswith=/"`
	// StateDir holds the persisted theme preference
	StateDir        string        `yaml:"state_dir,omitempty"`
	LogFile         string        `yaml:"log_file,omitempty"`
	SystemThemePoll time.Duration `yaml:"system_theme_poll" validate:"gte=1s"`
	HandoffTTL      time.Duration `yaml:"handoff_ttl" validate:"gte=1s"`
}

// Default returns the configuration written on first run
func Default() Config {
	return Config{
		StartView:       "/",
		SystemThemePoll: 30 * time.Second,
		HandoffTTL:      30 * time.Second,
	}
}

var validate = validator.New()

// Load reads the configuration from path, or ~/.config/zoneclock.yaml when
// path is empty. If the file doesn't exist, it creates a default one.
// Environment overrides, including those in an optional .env file, are
// applied on top.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		def := Default()
		if err := def.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if cfg.StateDir == "" {
		dir, err := defaultStateDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get state directory: %w", err)
		}
		cfg.StateDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadDotEnv loads ./.env if present. Variables already set win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := os.Getenv(EnvStartView); v != "" {
		c.StartView = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// DefaultPath returns ~/.config/zoneclock.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "zoneclock.yaml"), nil
}

func defaultStateDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "zoneclock"), nil
}

// DefaultLogFile returns the log path used by --debug
func DefaultLogFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cache", "zoneclock", "zoneclock.log"), nil
}

// Save writes the configuration to path atomically
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Atomic write: write to temp file, then rename
	tempFile, err := os.CreateTemp(configDir, "zoneclock-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
