package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for the analysis commands
type DefaultsConfig struct {
	// Clustering defaults
	Threshold  float64 `mapstructure:"threshold"`
	FrameLimit int     `mapstructure:"frame_limit"`

	// Trend defaults
	Window string `mapstructure:"window"`
	Since  string `mapstructure:"since"`

	// Parsing defaults
	FormatHint string `mapstructure:"format_hint"`
	Workers    int    `mapstructure:"workers"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Threshold:  0.8,
			FrameLimit: 5,
			Window:     "1h",
			Since:      "24h",
			Workers:    0,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.stacksift.yaml or ./.stacksift.yml
// 2. ~/.stacksift.yaml or ~/.stacksift.yml
// 3. $XDG_CONFIG_HOME/stacksift/config.yaml (or ~/.config/stacksift/config.yaml)
// 4. /etc/stacksift/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".stacksift.yaml", ".stacksift.yml", "stacksift.yaml", "stacksift.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "stacksift"))
	}
	searchPaths = append(searchPaths, "/etc/stacksift")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STACKSIFT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("STACKSIFT_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("STACKSIFT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("STACKSIFT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Defaults.Threshold = f
		}
	}
	if v := os.Getenv("STACKSIFT_WINDOW"); v != "" {
		cfg.Defaults.Window = v
	}
	if v := os.Getenv("STACKSIFT_FORMAT_HINT"); v != "" {
		cfg.Defaults.FormatHint = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
