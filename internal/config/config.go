package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"searchpanel/internal/domain"
)

// ErrInvalidTab is returned when default_tab names no tab
var ErrInvalidTab = errors.New("invalid default tab")

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	SeedQuery   string     `toml:"seed_query"`   // initial query text
	DefaultTab  string     `toml:"default_tab"`  // all | files | people
	ResultsFile string     `toml:"results_file"` // optional TOML result set
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen        bool `toml:"alt_screen"`
	Mouse            bool `toml:"mouse"`
	HighlightMatches bool `toml:"highlight_matches"`
}

// Tab returns the configured start tab
func (c *Config) Tab() domain.Tab {
	tab, err := domain.ParseTab(c.DefaultTab)
	if err != nil {
		return domain.TabAll
	}
	return tab
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if _, err := domain.ParseTab(c.DefaultTab); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidTab, c.DefaultTab)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for path, or for the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchpanel", "config.toml")
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes TOML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML
func Marshal(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		SeedQuery:  "",
		DefaultTab: string(domain.TabAll),
		UISettings: UISettings{
			AltScreen:        true,
			Mouse:            true,
			HighlightMatches: true,
		},
	}
}
