package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/explorer-position/internal/placement"
)

const (
	DefaultConfigDir  = "explorerpos"
	DefaultConfigFile = "config.yaml"

	DefaultProcess  = "explorer.exe"
	DefaultClass    = "CabinetWClass"
	DefaultLogLevel = "info"
)

var (
	defaultEdgeMargin    = placement.Margin{X: 20, Y: 20}
	defaultTaskbarMargin = placement.Margin{X: 120, Y: 20}
)

// DefaultConfig returns the built-in configuration with every field set
func DefaultConfig() *Config {
	on := true
	under := true
	title := true
	return &Config{
		Settings: Settings{
			PositionUnderCursor: &under,
			EdgeMargin:          []interface{}{int(defaultEdgeMargin.X), int(defaultEdgeMargin.Y)},
			UseTaskbarMargin:    &on,
			TaskbarMargin:       []interface{}{int(defaultTaskbarMargin.X), int(defaultTaskbarMargin.Y)},
		},
		Target: Target{
			Process:      DefaultProcess,
			Class:        DefaultClass,
			RequireTitle: &title,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses <UserConfigDir>/explorerpos/config.yaml (or .json)
// and falls back to DefaultConfig when neither exists.
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		// Try YAML first, then JSON
		yamlPath := filepath.Join(dir, "config.yaml")
		jsonPath := filepath.Join(dir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := LoadConfigFromBytes(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// WriteDefault writes the default configuration as YAML, refusing to
// overwrite an existing file
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	dir, _ := configDir()
	return filepath.Join(dir, DefaultConfigFile)
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, DefaultConfigDir), nil
}

// PlacementOptions builds the immutable placement policy
func (c *Config) PlacementOptions() (placement.Options, error) {
	margin, err := c.GetEdgeMargin()
	if err != nil {
		return placement.Options{}, fmt.Errorf("edgeMargin: %w", err)
	}
	taskbar, err := c.GetTaskbarMargin()
	if err != nil {
		return placement.Options{}, fmt.Errorf("taskbarMargin: %w", err)
	}

	return placement.Options{
		PositionUnderCursor: boolOr(c.Settings.PositionUnderCursor, true),
		Margin:              margin,
		UseTaskbarMargin:    boolOr(c.Settings.UseTaskbarMargin, true),
		TaskbarMargin:       taskbar,
	}, nil
}

// GetEdgeMargin returns the normal edge margin.
// Returns 20x20 as default if not configured
func (c *Config) GetEdgeMargin() (placement.Margin, error) {
	if c.Settings.EdgeMargin == nil {
		return defaultEdgeMargin, nil
	}
	return ParseMargin(c.Settings.EdgeMargin)
}

// GetTaskbarMargin returns the margin used when the cursor is on a taskbar.
// Returns 120x20 as default if not configured
func (c *Config) GetTaskbarMargin() (placement.Margin, error) {
	if c.Settings.TaskbarMargin == nil {
		return defaultTaskbarMargin, nil
	}
	return ParseMargin(c.Settings.TaskbarMargin)
}

// TargetProcess returns the image name of the process whose windows are moved
func (c *Config) TargetProcess() string {
	if c.Target.Process != "" {
		return c.Target.Process
	}
	return DefaultProcess
}

// TargetClass returns the window class to match
func (c *Config) TargetClass() string {
	if c.Target.Class != "" {
		return c.Target.Class
	}
	return DefaultClass
}

// RequireTitle reports whether untitled windows are skipped
func (c *Config) RequireTitle() bool {
	return boolOr(c.Target.RequireTitle, true)
}

// LogLevel returns the configured log level name
func (c *Config) LogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	return DefaultLogLevel
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
