// Package config loads user-level defaults for fontctl. Command-line flags
// always override config values; config values override built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds user-level defaults for fontctl
type Config struct {
	Library LibraryConfig `mapstructure:"library"`
	NoColor bool          `mapstructure:"no_color"`
}

// LibraryConfig holds default font library locations
type LibraryConfig struct {
	Dirs  []string `mapstructure:"dirs"`  // default local library directories
	Repos []string `mapstructure:"repos"` // default GitHub repositories (owner/repo)
}

var defaultConfig = Config{
	Library: LibraryConfig{
		Dirs:  []string{},
		Repos: []string{},
	},
	NoColor: false,
}

// ConfigDir returns the fontctl configuration directory, creating nothing.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %v", err)
	}
	return filepath.Join(home, ".config", "fontctl"), nil
}

// Load reads user configuration from the config directory and the
// environment. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("library.dirs", defaultConfig.Library.Dirs)
	v.SetDefault("library.repos", defaultConfig.Library.Repos)
	v.SetDefault("no_color", defaultConfig.NoColor)

	v.SetConfigName("fontctl")
	v.SetConfigType("toml")
	if configDir, err := ConfigDir(); err == nil {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("FONTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; ignore read errors and use defaults
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}
	return &config, nil
}

// LoadFile reads configuration from an explicit file path. Used by tests and
// the --config flag.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("library.dirs", defaultConfig.Library.Dirs)
	v.SetDefault("library.repos", defaultConfig.Library.Repos)
	v.SetDefault("no_color", defaultConfig.NoColor)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %v", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}
	return &config, nil
}
