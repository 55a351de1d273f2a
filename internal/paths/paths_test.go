// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetConfigDir_Override(t *testing.T) {
	t.Setenv(ConfigDirEnv, "/etc/pagetext")

	if got := GetConfigDir(); got != "/etc/pagetext" {
		t.Errorf("expected override, got %q", got)
	}
	if got := GetConfigFile(); got != filepath.Join("/etc/pagetext", "config.yaml") {
		t.Errorf("unexpected config file %q", got)
	}
}

func TestUserConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG lookup does not apply on Windows")
	}
	xdg := t.TempDir()
	t.Setenv(ConfigDirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := GetConfigDir(); got != filepath.Join(xdg, "pagetext") {
		t.Errorf("expected XDG config dir, got %q", got)
	}
}

func TestGetHomeConfigFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME is not consulted on Windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := GetHomeConfigFile(); got != filepath.Join(home, ".pagetext.yaml") {
		t.Errorf("unexpected home config %q", got)
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath(""); err != nil {
		t.Errorf("empty path should be valid: %v", err)
	}
	if err := ValidatePath("out/pages"); err != nil {
		t.Errorf("plain relative path should be valid: %v", err)
	}

	err := ValidatePath("out\x00pages")
	var pathErr *PathValidationError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected PathValidationError, got %v", err)
	}
	if pathErr.Path != "out\x00pages" {
		t.Errorf("unexpected path in error: %q", pathErr.Path)
	}
}

func TestValidateWindowsPath(t *testing.T) {
	if err := validateWindowsPath(`C:\docs\out`); err != nil {
		t.Errorf("drive letter should be valid: %v", err)
	}
	for _, bad := range []string{`C:\a|b`, `out?`, `a:b`} {
		if err := validateWindowsPath(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
