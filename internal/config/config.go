// Package config loads odooscan configuration: defaults, then
// .odooscan/config.yml under the analyzed root, then ODOOSCAN_*
// environment variables (env wins).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/odooscan/odooscan/internal/addons"
)

// Config is the complete odooscan configuration.
type Config struct {
	Languages []string     `yaml:"languages" mapstructure:"languages"`
	Ignore    []string     `yaml:"ignore" mapstructure:"ignore"`
	Output    OutputConfig `yaml:"output" mapstructure:"output"`
	Scan      ScanConfig   `yaml:"scan" mapstructure:"scan"`
}

// OutputConfig controls report serialization.
type OutputConfig struct {
	Indent bool `yaml:"indent" mapstructure:"indent"`
}

// ScanConfig controls what module analysis extracts.
type ScanConfig struct {
	// Models includes per-file data-model extraction in module reports.
	Models bool `yaml:"models" mapstructure:"models"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Languages: addons.DefaultLanguages,
		Ignore: []string{
			"**/.git/**",
			"**/__pycache__/**",
			"**/*.pyc",
		},
		Output: OutputConfig{Indent: true},
		Scan:   ScanConfig{Models: true},
	}
}

// LoadFromDir loads configuration for the given root directory with the
// following priority (highest to lowest):
//  1. Environment variables (ODOOSCAN_*)
//  2. Config file (.odooscan/config.yml or .odooscan/config.yaml)
//  3. Default values
func LoadFromDir(rootDir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(rootDir, ".odooscan"))

	bindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFile loads configuration from an explicit config file path,
// still applying defaults and environment overrides.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	bindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("ODOOSCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("languages")
	v.BindEnv("ignore")
	v.BindEnv("output.indent")
	v.BindEnv("scan.models")
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("languages", defaults.Languages)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("output.indent", defaults.Output.Indent)
	v.SetDefault("scan.models", defaults.Scan.Models)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
