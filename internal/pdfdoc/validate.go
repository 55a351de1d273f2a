// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidationMode selects how strictly pdfcpu checks a file before it is read
type ValidationMode string

const (
	ValidationOff     ValidationMode = "off"
	ValidationRelaxed ValidationMode = "relaxed"
	ValidationStrict  ValidationMode = "strict"
)

// ParseValidationMode converts a mode name, defaulting "" to ValidationOff
func ParseValidationMode(name string) (ValidationMode, error) {
	switch ValidationMode(name) {
	case "", ValidationOff:
		return ValidationOff, nil
	case ValidationRelaxed:
		return ValidationRelaxed, nil
	case ValidationStrict:
		return ValidationStrict, nil
	default:
		return "", fmt.Errorf("unknown validation mode %q (want %s, %s or %s)",
			name, ValidationOff, ValidationRelaxed, ValidationStrict)
	}
}

var disableConfigDir sync.Once

// pdfcpuConfig returns a fresh pdfcpu configuration. pdfcpu's on-disk config
// directory is disabled so that reading a PDF never writes to the home dir.
func pdfcpuConfig(mode ValidationMode) *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	if mode == ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}

// Validate checks the document structure of path with pdfcpu
func Validate(path string, mode ValidationMode) error {
	if mode == ValidationOff {
		return nil
	}
	if err := api.ValidateFile(path, pdfcpuConfig(mode)); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}
