// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pagetext/internal/paths"

	"gopkg.in/yaml.v3"
)

// Accepted values for the layout and validation settings
var (
	Layouts         = []string{"plain", "rows"}
	ValidationModes = []string{"off", "relaxed", "strict"}
)

// Settings are the options shared by the defaults section and every profile
type Settings struct {
	Geometry   bool   `yaml:"geometry"`
	Normalize  bool   `yaml:"normalize"`
	Layout     string `yaml:"layout"`
	Validation string `yaml:"validation"`
	Wrap       int    `yaml:"wrap"`
	Debug      bool   `yaml:"debug"`
	NoColor    bool   `yaml:"no_color"`
}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Profiles for different extraction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named set of settings
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// defaultConfig returns the built-in configuration
func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Layout = "plain"
	config.Defaults.Validation = "off"

	config.Profiles["raw"] = Profile{
		Settings:    Settings{Layout: "plain", Validation: "off"},
		Description: "Raw page text exactly as the PDF library returns it",
	}
	config.Profiles["geometry"] = Profile{
		Settings:    Settings{Geometry: true, Layout: "plain", Validation: "off"},
		Description: "Crop box width and height followed by whitespace-normalized text",
	}

	return config
}

// LoadConfig loads configuration from the specified file path.
// An empty path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Profiles in the file replace built-ins wholesale, so an omitted
	// layout or validation falls back to the defaults section
	for name, profile := range config.Profiles {
		if profile.Layout == "" {
			profile.Layout = config.Defaults.Layout
		}
		if profile.Validation == "" {
			profile.Validation = config.Defaults.Validation
		}
		config.Profiles[name] = profile
	}
	if config.Defaults.Layout == "" {
		config.Defaults.Layout = "plain"
	}
	if config.Defaults.Validation == "" {
		config.Defaults.Validation = "off"
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the standard locations
// and returns "" when there is none
func FindConfigFile() string {
	// Project-specific config in the current directory comes first
	for _, name := range []string{"pagetext.yaml", "pagetext.yml", ".pagetext.yaml", ".pagetext.yml"} {
		if fileExists(name) {
			return name
		}
	}

	// An explicit config directory comes before the user's own files
	if os.Getenv(paths.ConfigDirEnv) != "" {
		if configFile := paths.GetConfigFile(); fileExists(configFile) {
			return configFile
		}
	}

	if homeConfig := paths.GetHomeConfigFile(); homeConfig != "" && fileExists(homeConfig) {
		return homeConfig
	}

	if userDir := paths.UserConfigDir(); userDir != "" {
		userConfig := filepath.Join(userDir, "config.yaml")
		if fileExists(userConfig) {
			return userConfig
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig checks the settings of the defaults section and every profile
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if err := validateSettings(config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for name, profile := range config.Profiles {
		if err := validateSettings(profile.Settings); err != nil {
			return fmt.Errorf("profile '%s': %w", name, err)
		}
	}

	return nil
}

func validateSettings(s Settings) error {
	if !contains(Layouts, s.Layout) {
		return fmt.Errorf("invalid layout %q (want one of %v)", s.Layout, Layouts)
	}
	if !contains(ValidationModes, s.Validation) {
		return fmt.Errorf("invalid validation mode %q (want one of %v)", s.Validation, ValidationModes)
	}
	if s.Wrap < -1 {
		return fmt.Errorf("invalid wrap width %d (want -1, 0 or a positive width)", s.Wrap)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile, or searches the
// standard locations when configFile is empty. If loading fails it returns
// the default configuration together with the error so the caller can warn.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Callers should not crash on a bad discovered config file
		return defaultConfig(), err
	}
	return cfg, nil
}
