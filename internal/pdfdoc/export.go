// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pagetext/internal/extract"
	"pagetext/internal/paths"
)

// ExportedPagePath returns where ExportPage writes page pageNumber of path
func ExportedPagePath(path string, pageNumber int, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".pdf")
	return filepath.Join(outDir, fmt.Sprintf("%s_page_%d.pdf", base, pageNumber))
}

// ExportPage writes the 1-based page pageNumber of path as a single-page PDF
// into outDir, creating the directory if needed, and returns the new file.
func ExportPage(path string, pageNumber int, outDir string) (string, error) {
	if pageNumber < 1 {
		return "", extract.NewError(extract.ErrorTypeIndexOutOfRange, path, pageNumber, "page numbers start at 1", nil)
	}
	if outDir == "" {
		return "", extract.NewError(extract.ErrorTypeInvalidArgument, path, pageNumber, "no output directory given", nil)
	}
	if err := paths.ValidatePath(outDir); err != nil {
		return "", extract.NewError(extract.ErrorTypeInvalidArgument, path, pageNumber, "bad output directory", err)
	}
	if _, err := os.Stat(path); err != nil {
		return "", extract.NewError(extract.ErrorTypeFileNotFound, path, 0, "cannot access file", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	selection := []string{strconv.Itoa(pageNumber)}
	if err := api.ExtractPagesFile(path, outDir, selection, pdfcpuConfig(ValidationRelaxed)); err != nil {
		return "", extract.NewError(extract.ErrorTypeParse, path, pageNumber, "failed to export page", err)
	}

	return ExportedPagePath(path, pageNumber, outDir), nil
}
