// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"pagetext/internal/extract"
	"pagetext/internal/observability"
)

// document is an open PDF file. It implements extract.Document.
type document struct {
	path     string
	file     *os.File
	reader   *pdf.Reader
	layout   Layout
	observer *observability.StandardObserver
}

var _ extract.Document = (*document)(nil)

func (d *document) PageCount() int {
	return d.reader.NumPage()
}

// page resolves a zero-based index to the library's 1-based page
func (d *document) page(index int) (pdf.Page, error) {
	if index < 0 || index >= d.PageCount() {
		return pdf.Page{}, extract.NewError(extract.ErrorTypeIndexOutOfRange, d.path, index+1,
			fmt.Sprintf("page number out of range [1, %d]", d.PageCount()), nil)
	}
	p := d.reader.Page(index + 1)
	if p.V.IsNull() {
		return pdf.Page{}, extract.NewError(extract.ErrorTypeParse, d.path, index+1, "page object is missing", nil)
	}
	return p, nil
}

func (d *document) PageText(index int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	p, err := d.page(index)
	if err != nil {
		return "", err
	}

	switch d.layout {
	case LayoutRows:
		text, err := textByRows(p)
		if err != nil {
			d.observer.LogDetail(componentName, fmt.Sprintf("row layout failed, using plain text: %v", err))
			return p.GetPlainText(nil)
		}
		return text, nil
	default:
		return p.GetPlainText(nil)
	}
}

func (d *document) PageCropBox(index int) (box extract.Rect, err error) {
	defer func() {
		if r := recover(); r != nil {
			box = extract.Rect{}
			err = fmt.Errorf("malformed page geometry: %v", r)
		}
	}()

	p, err := d.page(index)
	if err != nil {
		return extract.Rect{}, err
	}
	return cropBox(p.V)
}

func (d *document) Close() error {
	return d.file.Close()
}
