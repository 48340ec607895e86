package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration for the given root directory with the following
// priority (highest to lowest):
//  1. Environment variables (FLOWGEN_*)
//  2. Config file (.flowgen/config.yml or .flowgen/config.yaml)
//  3. Default values
func Load(rootDir string) (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(rootDir, ".flowgen")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Enable environment variable overrides, e.g. FLOWGEN_OUTPUT_DIR.
	v.SetEnvPrefix("FLOWGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.dir")
	v.BindEnv("scan.recursive")
	v.BindEnv("scan.exclude")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable; defaults + env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("scan.recursive", defaults.Scan.Recursive)
	v.SetDefault("scan.exclude", defaults.Scan.Exclude)
}
