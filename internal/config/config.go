// Package config provides configuration management for modegen using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/modegen/internal/roomodes"
)

// AppName is the application name used for config file naming.
const AppName = "modegen"

// Config represents the top-level configuration structure.
type Config struct {
	// Dir is the directory scanned for *-mode.md documents.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Output is the generated config filename, written inside Dir.
	Output string `mapstructure:"output" yaml:"output"`

	// Dialects maps mode filenames to section-splitting dialect names,
	// merged over the built-in reservations.
	Dialects map[string]string `mapstructure:"dialects" yaml:"dialects"`
}

// v is the package's viper instance. It uses "::" as the key delimiter:
// the dialects map is keyed by filenames, every one of which contains
// "." (*-mode.md), and viper's default "." delimiter would split them
// into nested maps.
var v *viper.Viper

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	v = viper.NewWithOptions(viper.KeyDelimiter("::"))

	// Config file settings
	v.SetConfigName(AppName)
	v.SetConfigType("yaml")

	// Search paths (in order of precedence)
	v.AddConfigPath(".") // Current directory
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	v.SetEnvPrefix("MODEGEN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dir", ".")
	v.SetDefault("output", roomodes.OutputFilename)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if v == nil {
		Init()
	}

	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
