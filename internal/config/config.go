// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and persists the pwnedcheck configuration. Values
// are layered: defaults, then an optional YAML config file (user or
// system path), then PWNEDCHECK_* environment variables, then bound CLI
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url" yaml:"base_url"`
		Timeout int    `mapstructure:"timeout" yaml:"timeout"` // seconds
	} `mapstructure:"api" yaml:"api"`
	Generator struct {
		Length int `mapstructure:"length" yaml:"length"`
	} `mapstructure:"generator" yaml:"generator"`
	Language string `mapstructure:"language" yaml:"language"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Pwnedcheck")
		default: // Linux, macOS, etc.
			configDir = "/etc/pwnedcheck"
		}
	} else {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(userDir, "pwnedcheck")
	}

	return filepath.Join(configDir, "pwnedcheck.yaml"), nil
}

// LoadConfig builds the layered configuration. An explicit config file
// path (from the --config flag) takes precedence over the standard
// search locations. A missing config file in the standard locations is
// surfaced as viper.ConfigFileNotFoundError; the caller decides whether
// to write defaults.
func LoadConfig(cmd *cobra.Command, defaults map[string]any, explicitPath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("pwnedcheck")
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, readErr
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("pwnedcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	// Surface not-found after the unmarshal so callers still get the
	// default-populated config alongside the error.
	return c, readErr
}

// WriteConfigFile persists the configuration as YAML to the user or
// system config path, creating the directory if needed.
func WriteConfigFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
