// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftest builds small, well-formed PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Box is a [llx lly urx ury] page rectangle
type Box [4]float64

// Letter is a US Letter media box
var Letter = &Box{0, 0, 612, 792}

// Page describes one page. Each line is drawn by its own text object.
type Page struct {
	Lines    []string
	MediaBox *Box // omitted from the page dictionary when nil
	CropBox  *Box // omitted from the page dictionary when nil
}

// Document describes a whole file
type Document struct {
	Pages []Page

	// MediaBox on the page tree root, inherited by pages without their own
	MediaBox *Box
	// CropBox on the page tree root, inherited by pages without their own
	CropBox *Box
}

// Build serializes doc with a correct cross-reference table
func Build(doc Document) []byte {
	var objects []string

	kids := make([]string, len(doc.Pages))
	for i := range doc.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	var pages strings.Builder
	fmt.Fprintf(&pages, "<< /Type /Pages /Kids [%s] /Count %d", strings.Join(kids, " "), len(doc.Pages))
	writeBox(&pages, "MediaBox", doc.MediaBox)
	writeBox(&pages, "CropBox", doc.CropBox)
	pages.WriteString(" >>")
	objects = append(objects, pages.String())

	objects = append(objects, fmt.Sprintf(
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>",
		strings.TrimSpace(strings.Repeat("556 ", 126-32+1))))

	for i, page := range doc.Pages {
		var dict strings.Builder
		fmt.Fprintf(&dict, "<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R", 5+2*i)
		writeBox(&dict, "MediaBox", page.MediaBox)
		writeBox(&dict, "CropBox", page.CropBox)
		dict.WriteString(" >>")
		objects = append(objects, dict.String())

		content := contentStream(page.Lines)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// WriteFile builds doc into dir/name and returns the path
func WriteFile(t testing.TB, dir, name string, doc Document) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(doc), 0o600); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}

// SinglePage writes a one-page Letter document holding lines
func SinglePage(t testing.TB, lines ...string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "single.pdf", Document{
		Pages: []Page{{Lines: lines, MediaBox: Letter}},
	})
}

func contentStream(lines []string) string {
	var b strings.Builder
	y := 720
	for _, line := range lines {
		fmt.Fprintf(&b, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", y, escape(line))
		y -= 14
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeBox(b *strings.Builder, key string, box *Box) {
	if box == nil {
		return
	}
	fmt.Fprintf(b, " /%s [%s %s %s %s]", key,
		number(box[0]), number(box[1]), number(box[2]), number(box[3]))
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escape makes s safe inside a PDF literal string
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\n", `\n`, "\t", `\t`)
	return r.Replace(s)
}
