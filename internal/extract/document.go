// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

// Rect is a page box in default user space units (PDF points).
type Rect struct {
	LLX float64 // lower-left x
	LLY float64 // lower-left y
	URX float64 // upper-right x
	URY float64 // upper-right y
}

// Width returns the horizontal extent of the box
func (r Rect) Width() float64 {
	return r.URX - r.LLX
}

// Height returns the vertical extent of the box
func (r Rect) Height() float64 {
	return r.URY - r.LLY
}

// Document is an opened, read-only PDF. Pages are addressed by zero-based index
// and are only valid until Close is called.
type Document interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// PageText extracts the text content of the page at index
	PageText(index int) (string, error)

	// PageCropBox returns the effective crop box of the page at index
	PageCropBox(index int) (Rect, error)

	// Close releases the underlying file
	Close() error
}

// Opener opens documents from the file system. Implementations return
// *Error values typed FileNotFound or Parse.
type Opener interface {
	Open(path string) (Document, error)
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(path string) (Document, error)

// Open calls f(path)
func (f OpenerFunc) Open(path string) (Document, error) {
	return f(path)
}
