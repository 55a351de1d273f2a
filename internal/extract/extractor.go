// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"io"
	"strconv"

	"pagetext/internal/observability"
)

const componentName = "page_text_extractor"

// Options controls what Extract produces
type Options struct {
	// IncludeGeometry adds the crop box to the result and forces normalization
	IncludeGeometry bool

	// Normalize collapses whitespace runs even without geometry
	Normalize bool

	// WrapWidth wraps the text at this many display columns; <= 0 disables
	WrapWidth int
}

// Result is the output of a single-page extraction
type Result struct {
	Path       string
	PageNumber int // 1-based
	PageCount  int
	Text       string
	CropBox    *Rect // nil unless IncludeGeometry
}

// Extractor pulls the text of one page out of a document
type Extractor struct {
	opener   Opener
	options  Options
	observer *observability.StandardObserver
}

// NewExtractor creates an extractor that reads documents through opener.
// observer may be nil.
func NewExtractor(opener Opener, options Options, observer *observability.StandardObserver) *Extractor {
	return &Extractor{
		opener:   opener,
		options:  options,
		observer: observer,
	}
}

// GetComponentName returns the component identifier
func (e *Extractor) GetComponentName() string {
	return componentName
}

// Options returns the extractor's options
func (e *Extractor) Options() Options {
	return e.options
}

// Extract opens path, selects the 1-based pageNumber and extracts its text.
// The document is closed on every return path.
func (e *Extractor) Extract(path string, pageNumber int) (result *Result, err error) {
	finishTiming := e.observer.StartTiming(componentName, "extract", path)
	defer func() {
		metadata := map[string]interface{}{"page": pageNumber}
		if err != nil {
			metadata["error"] = err.Error()
		} else {
			metadata["char_count"] = len(result.Text)
		}
		finishTiming(err == nil, metadata)
	}()

	doc, err := e.open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := doc.Close(); closeErr != nil && err == nil {
			e.observer.LogDetail(componentName, fmt.Sprintf("close failed: %v", closeErr))
		}
	}()

	pageCount := doc.PageCount()
	if pageNumber < 1 || pageNumber > pageCount {
		return nil, NewError(ErrorTypeIndexOutOfRange, path, pageNumber,
			fmt.Sprintf("page number out of range [1, %d]", pageCount), nil)
	}
	index := pageNumber - 1

	result = &Result{
		Path:       path,
		PageNumber: pageNumber,
		PageCount:  pageCount,
	}

	done := e.observer.StartStep(componentName, fmt.Sprintf("extract text of page %d/%d", pageNumber, pageCount), "")
	text, err := doc.PageText(index)
	if err != nil {
		done(false, err.Error())
		return nil, asParseError(err, path, pageNumber, "failed to extract page text")
	}
	done(true, fmt.Sprintf("%d chars", len(text)))

	if e.options.IncludeGeometry {
		done := e.observer.StartStep(componentName, "read crop box", "")
		box, err := doc.PageCropBox(index)
		if err != nil {
			done(false, err.Error())
			return nil, asParseError(err, path, pageNumber, "failed to read crop box")
		}
		done(true, fmt.Sprintf("[%s %s %s %s]",
			FormatNumber(box.LLX), FormatNumber(box.LLY), FormatNumber(box.URX), FormatNumber(box.URY)))
		result.CropBox = &box
	}

	if e.options.IncludeGeometry || e.options.Normalize {
		text = NormalizeWhitespace(text)
	}
	result.Text = Wrap(text, e.options.WrapWidth)

	return result, nil
}

// PageCount opens path and reports how many pages it has
func (e *Extractor) PageCount(path string) (count int, err error) {
	finishTiming := e.observer.StartTiming(componentName, "page_count", path)
	defer func() {
		metadata := map[string]interface{}{"page_count": count}
		if err != nil {
			metadata["error"] = err.Error()
		}
		finishTiming(err == nil, metadata)
	}()

	doc, err := e.open(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	return doc.PageCount(), nil
}

func (e *Extractor) open(path string) (Document, error) {
	done := e.observer.StartStep(componentName, "open document", path)
	doc, err := e.opener.Open(path)
	if err != nil {
		done(false, err.Error())
		if TypeOf(err) == "" {
			err = NewError(ErrorTypeParse, path, 0, "failed to open document", err)
		}
		return nil, err
	}
	done(true, fmt.Sprintf("%d pages", doc.PageCount()))
	return doc, nil
}

// asParseError keeps typed errors and wraps anything else as a parse error
func asParseError(err error, path string, page int, message string) error {
	if TypeOf(err) != "" {
		return err
	}
	return NewError(ErrorTypeParse, path, page, message, err)
}

// Write prints the result: the raw text on its own line, or in geometry
// mode the crop box width, height and the normalized text, one per line.
func Write(w io.Writer, result *Result) error {
	if result.CropBox != nil {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", FormatNumber(result.CropBox.URX), FormatNumber(result.CropBox.URY)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, result.Text)
	return err
}

// FormatNumber renders a PDF number in its shortest decimal form (612, 595.276)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
