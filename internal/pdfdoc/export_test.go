// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagetext/internal/extract"
	"pagetext/internal/pdfdoc/pdftest"
)

func TestExportedPagePath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "report_page_3.pdf"), ExportedPagePath("/docs/report.pdf", 3, "out"))
	assert.Equal(t, filepath.Join("out", "scan.PDF_page_1.pdf"), ExportedPagePath("scan.PDF", 1, "out"))
}

func TestExportPage_ArgumentErrors(t *testing.T) {
	path := pdftest.SinglePage(t, "x")
	dir := t.TempDir()

	_, err := ExportPage(path, 0, dir)
	assert.True(t, extract.IsType(err, extract.ErrorTypeIndexOutOfRange), "%v", err)

	_, err = ExportPage(path, 1, "")
	assert.True(t, extract.IsType(err, extract.ErrorTypeInvalidArgument), "%v", err)

	_, err = ExportPage(filepath.Join(dir, "missing.pdf"), 1, dir)
	assert.True(t, extract.IsType(err, extract.ErrorTypeFileNotFound), "%v", err)
}

func TestExportPage(t *testing.T) {
	path := pdftest.WriteFile(t, t.TempDir(), "book.pdf", pdftest.Document{
		MediaBox: pdftest.Letter,
		Pages:    []pdftest.Page{{Lines: []string{"one"}}, {Lines: []string{"two"}}},
	})
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	saved, err := ExportPage(path, 2, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "book_page_2.pdf"), saved)
	assert.FileExists(t, saved)
}

func TestValidate(t *testing.T) {
	path := pdftest.SinglePage(t, "valid")

	assert.NoError(t, Validate(path, ValidationOff))
	assert.NoError(t, Validate(path, ValidationRelaxed))
	assert.NoError(t, Validate(filepath.Join(t.TempDir(), "missing.pdf"), ValidationOff), "off never touches the file")
}

func TestExportPage_BadOutputDirectory(t *testing.T) {
	path := pdftest.SinglePage(t, "x")

	_, err := ExportPage(path, 1, "out\x00dir")
	assert.True(t, extract.IsType(err, extract.ErrorTypeInvalidArgument), "%v", err)
}
