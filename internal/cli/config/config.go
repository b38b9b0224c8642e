package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the tool configuration loaded from modulemap.yml
type Config struct {
	Format FormatConfig `mapstructure:"format"`
	Check  CheckConfig  `mapstructure:"check"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// FormatConfig represents formatting configuration
type FormatConfig struct {
	IndentSize int  `mapstructure:"indent_size"`
	UseTabs    bool `mapstructure:"use_tabs"`
}

// CheckConfig represents syntax checking configuration
type CheckConfig struct {
	JSON bool `mapstructure:"json"`
}

// WatchConfig represents file watching configuration
type WatchConfig struct {
	DebounceMs int      `mapstructure:"debounce_ms"`
	Extensions []string `mapstructure:"extensions"`
}

// Load loads the configuration from modulemap.yml or modulemap.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("format.indent_size", 4)
	v.SetDefault("format.use_tabs", false)
	v.SetDefault("check.json", false)
	v.SetDefault("watch.debounce_ms", 300)
	v.SetDefault("watch.extensions", []string{".modulemap"})

	// Set config name and paths
	v.SetConfigName("modulemap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("MODULEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetProjectRoot tries to find the project root by looking for modulemap.yml
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		// Check for modulemap.yml or modulemap.yaml
		if _, err := os.Stat(filepath.Join(dir, "modulemap.yml")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "modulemap.yaml")); err == nil {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return "", fmt.Errorf("no modulemap.yml found in this directory or any parent")
		}
		dir = parent
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Format.IndentSize < 0 {
		return fmt.Errorf("format.indent_size must not be negative, got: %d", cfg.Format.IndentSize)
	}
	if cfg.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got: %d", cfg.Watch.DebounceMs)
	}
	for _, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("watch.extensions entries must start with '.', got: %s", ext)
		}
	}
	return nil
}
