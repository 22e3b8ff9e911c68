// Package config handles the global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/authorlist/config.yml.
type Config struct {
	UsersCSV       string `yaml:"users_csv,omitempty"`
	FuzzyThreshold int    `yaml:"fuzzy_threshold,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "authorlist"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, ConfigDir, ConfigFile)
}

// Load reads the configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config.
// Useful for testing.
func ResetCache() {
	configCache = nil
}

// GetUsersCSV returns the configured users table path, or the empty
// string when nothing is set. The AUTHORLIST_USERS_CSV environment
// variable takes priority over the config file.
func GetUsersCSV() string {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
	}
	return getConfigValue("AUTHORLIST_USERS_CSV", cfg.UsersCSV)
}

// GetFuzzyThreshold returns the configured fuzzy matching threshold, or
// zero when nothing is set. The AUTHORLIST_FUZZY_THRESHOLD environment
// variable takes priority over the config file.
func GetFuzzyThreshold() int {
	if v := os.Getenv("AUTHORLIST_FUZZY_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warnf("ignoring AUTHORLIST_FUZZY_THRESHOLD %q: not a number", v)
		} else {
			return n
		}
	}
	cfg, err := Load()
	if err != nil {
		return 0
	}
	return cfg.FuzzyThreshold
}

// getConfigValue returns the environment variable value when set,
// falling back to the config file value.
func getConfigValue(envKey, configValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return configValue
}
