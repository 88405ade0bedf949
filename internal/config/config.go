package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"skyform/internal/domain"
	"skyform/internal/eventbus"
)

// Environment variables that override values from the config file
const (
	EnvLogFile     = "SKYFORM_LOG_FILE"
	EnvDateFormat  = "SKYFORM_DATE_FORMAT"
	EnvOrigin      = "SKYFORM_ORIGIN"
	EnvDestination = "SKYFORM_DESTINATION"
)

// Config represents the application configuration
type Config struct {
	Version            int        `toml:"version"`
	DefaultOrigin      string     `toml:"default_origin"`      // airport code
	DefaultDestination string     `toml:"default_destination"` // airport code
	DefaultFareClass   string     `toml:"default_fare_class"`
	DateFormat         string     `toml:"date_format"` // Go time layout
	LogFile            string     `toml:"log_file"`
	UISettings         UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowKeyHelp bool `toml:"show_key_help"`
}

// FareClass returns the configured default fare, falling back to Economy
func (c *Config) FareClass() domain.FareClass {
	if fc, ok := domain.ParseFareClass(c.DefaultFareClass); ok {
		return fc
	}
	return domain.Economy
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/skyform/config.toml or the closest fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "skyform", "config.toml")
}

// NewConfigService creates a config service reading path; empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that publishes load/save events
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save writes cfg to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from file into the process environment
// without replacing variables that are already set. A missing file is not an error.
func LoadDotEnv(file string) error {
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any SKYFORM_* variables that are set
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvDateFormat); ok && v != "" {
		cfg.DateFormat = v
	}
	if v, ok := os.LookupEnv(EnvOrigin); ok && v != "" {
		cfg.DefaultOrigin = v
	}
	if v, ok := os.LookupEnv(EnvDestination); ok && v != "" {
		cfg.DefaultDestination = v
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:            1,
		DefaultOrigin:      "DAC",
		DefaultDestination: "CGP",
		DefaultFareClass:   string(domain.Economy),
		DateFormat:         domain.DefaultDateLayout,
		LogFile:            "skyform.log",
		UISettings: UISettings{
			ShowKeyHelp: true,
		},
	}
}
