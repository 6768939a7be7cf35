package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type AIConfig struct {
	Provider string `yaml:"provider"` // "gemini", "openai" or "claude"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type Config struct {
	RefreshInterval string    `yaml:"refresh_interval"`
	Theme           string    `yaml:"theme"` // "dark", "light" or "auto"
	BatchSize       int       `yaml:"batch_size,omitempty"`
	AI              *AIConfig `yaml:"ai,omitempty"`
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("TECHPULSE_AI_KEY")
}

// Provider returns the configured generator provider, defaulting to
// gemini.
func (c *Config) Provider() string {
	if c.AI == nil || c.AI.Provider == "" {
		return "gemini"
	}
	return c.AI.Provider
}

// RefreshDuration returns the refresh interval, defaulting to 1 hour —
// the cadence the dashboard has always used.
func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// GetBatchSize returns how many articles to request per refresh,
// defaulting to 12.
func (c *Config) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return 12
	}
	return c.BatchSize
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "techpulse", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.CacheHome, "techpulse", "techpulse.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.RefreshInterval == "" {
		cfg.RefreshInterval = defaults.RefreshInterval
	}
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("unknown theme %q (valid: dark, light, auto)", cfg.Theme)
	}
	if cfg.AI != nil && cfg.AI.Provider != "" {
		validProviders := map[string]bool{"gemini": true, "openai": true, "claude": true}
		if !validProviders[cfg.AI.Provider] {
			return fmt.Errorf("unknown AI provider %q (valid: gemini, openai, claude)", cfg.AI.Provider)
		}
	}
	return nil
}
