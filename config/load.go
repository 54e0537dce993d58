package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/lineage/errors"
)

// FileName is the project and user config file name
const FileName = "lineage.toml"

var globalConfig *Config
var viperInstance *viper.Viper
var explicitPath string

// Load reads the configuration using Viper, caching the result
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// SetConfigFile makes an explicit config file the highest-precedence file
// source. Must be called before Load.
func SetConfigFile(path string) {
	explicitPath = path
	Reset()
}

// GetViper returns the Viper instance for key-level access (config get)
func GetViper() (*viper.Viper, error) {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path over the defaults,
// without environment or cascade sources
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// Sources lists the config files consulted, lowest precedence first
func Sources() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".lineage", FileName))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	if explicitPath != "" {
		paths = append(paths, explicitPath)
	}
	return paths
}

// initViper initializes Viper with configuration sources and defaults
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()

	v.SetEnvPrefix("LINEAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := mergeConfigFiles(v); err != nil {
		return nil, err
	}

	viperInstance = v
	return v, nil
}

// findProjectConfig searches for lineage.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges config files in precedence order (user < project < explicit).
// Missing cascade files are skipped; a missing or broken explicit file is an error.
func mergeConfigFiles(v *viper.Viper) error {
	for _, path := range Sources() {
		if _, err := os.Stat(path); err != nil {
			if path == explicitPath {
				return errors.Wrapf(err, "config file %s", path)
			}
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(path)
		fileViper.SetConfigType("toml")

		if err := fileViper.ReadInConfig(); err != nil {
			if path == explicitPath {
				return errors.Wrapf(err, "failed to read config file %s", path)
			}
			continue
		}

		if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
			return errors.Wrapf(err, "failed to merge config file %s", path)
		}
	}
	return nil
}
