// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"pagetext/internal/extract"
	"pagetext/internal/observability"
)

const componentName = "pdf_document"

// Layout selects the text extraction algorithm
type Layout string

const (
	// LayoutPlain emits text in content-stream order
	LayoutPlain Layout = "plain"

	// LayoutRows groups text runs into rows ordered top to bottom, left to right
	LayoutRows Layout = "rows"
)

// ParseLayout converts a layout name, defaulting "" to LayoutPlain
func ParseLayout(name string) (Layout, error) {
	switch Layout(name) {
	case "", LayoutPlain:
		return LayoutPlain, nil
	case LayoutRows:
		return LayoutRows, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %s or %s)", name, LayoutPlain, LayoutRows)
	}
}

// Opener opens PDF files with ledongthuc/pdf
type Opener struct {
	Layout     Layout
	Validation ValidationMode
	observer   *observability.StandardObserver
}

// NewOpener creates an Opener. observer may be nil.
func NewOpener(layout Layout, validation ValidationMode, observer *observability.StandardObserver) *Opener {
	if layout == "" {
		layout = LayoutPlain
	}
	if validation == "" {
		validation = ValidationOff
	}
	return &Opener{
		Layout:     layout,
		Validation: validation,
		observer:   observer,
	}
}

var _ extract.Opener = (*Opener)(nil)

// GetComponentName returns the component identifier
func (o *Opener) GetComponentName() string {
	return componentName
}

// Open implements extract.Opener. The returned document owns the file handle.
func (o *Opener) Open(path string) (extract.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, extract.NewError(extract.ErrorTypeFileNotFound, path, 0, "no such file", nil)
		}
		return nil, extract.NewError(extract.ErrorTypeFileNotFound, path, 0, "cannot access file", err)
	}
	if info.IsDir() {
		return nil, extract.NewError(extract.ErrorTypeParse, path, 0, "is a directory, not a PDF file", nil)
	}

	if o.Validation != ValidationOff {
		done := o.observer.StartStep(componentName, fmt.Sprintf("validate (%s)", o.Validation), path)
		if err := Validate(path, o.Validation); err != nil {
			done(false, err.Error())
			return nil, extract.NewError(extract.ErrorTypeParse, path, 0, "validation failed", err)
		}
		done(true, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, extract.NewError(extract.ErrorTypeFileNotFound, path, 0, "cannot open file", err)
	}

	reader, err := newReader(f, info.Size())
	if err != nil {
		f.Close()
		message := "not a readable PDF"
		if errors.Is(err, pdf.ErrInvalidPassword) {
			message = "encrypted PDF is not supported"
		}
		return nil, extract.NewError(extract.ErrorTypeParse, path, 0, message, err)
	}

	return &document{
		path:     path,
		file:     f,
		reader:   reader,
		layout:   o.Layout,
		observer: o.observer,
	}, nil
}

// newReader parses the document structure, turning library panics on
// malformed input into errors
func newReader(f *os.File, size int64) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()
	return pdf.NewReader(f, size)
}
