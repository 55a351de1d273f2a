// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDirEnv overrides the configuration directory on all platforms
const ConfigDirEnv = "PAGETEXT_CONFIG_DIR"

// GetConfigDir returns the pagetext configuration directory: $PAGETEXT_CONFIG_DIR
// when set, otherwise the per-user directory
func GetConfigDir() string {
	// Check for explicit override first (works on all platforms)
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return UserConfigDir()
}

// UserConfigDir returns the per-user configuration directory: %APPDATA%\pagetext
// on Windows, $XDG_CONFIG_HOME/pagetext (default ~/.config/pagetext) elsewhere.
// It returns "" when no home directory can be determined.
func UserConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pagetext")
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pagetext")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pagetext")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	dir := GetConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// GetHomeConfigFile returns ~/.pagetext.yaml, or "" without a home directory
func GetHomeConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pagetext.yaml")
}

// ValidatePath validates a path for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return nil // Empty path is valid
	}

	if runtime.GOOS == "windows" {
		return validateWindowsPath(path)
	}

	return validateUnixPath(path)
}

// validateWindowsPath validates a Windows path
func validateWindowsPath(path string) error {
	for i, char := range path {
		switch char {
		case '<', '>', '"', '|', '?', '*', 0:
			return &PathValidationError{Path: path, Reason: "contains invalid character: " + string(char)}
		case ':':
			// Drive letter (C:)
			if i == 1 {
				continue
			}
			return &PathValidationError{Path: path, Reason: "contains invalid character: :"}
		}
	}

	if len(path) > 32767 {
		return &PathValidationError{
			Path:   path,
			Reason: "path exceeds maximum length of 32,767 characters",
		}
	}

	return nil
}

// validateUnixPath validates a Unix path
func validateUnixPath(path string) error {
	// Unix paths are generally more permissive
	// Main restriction is null bytes
	for _, char := range path {
		if char == 0 {
			return &PathValidationError{
				Path:   path,
				Reason: "contains null byte",
			}
		}
	}

	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
