// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"pagetext/internal/extract"
)

// maxTreeDepth bounds the /Parent walk on malformed page trees
const maxTreeDepth = 32

// cropBox returns the page's effective crop box: its own or inherited
// /CropBox, else its own or inherited /MediaBox.
func cropBox(page pdf.Value) (extract.Rect, error) {
	if v := inherited(page, "CropBox"); !v.IsNull() {
		return parseRect(v)
	}
	if v := inherited(page, "MediaBox"); !v.IsNull() {
		return parseRect(v)
	}
	return extract.Rect{}, fmt.Errorf("page has neither CropBox nor MediaBox")
}

// inherited looks key up on the page and then on its ancestors
func inherited(page pdf.Value, key string) pdf.Value {
	current := page
	for i := 0; i < maxTreeDepth && !current.IsNull(); i++ {
		if v := current.Key(key); !v.IsNull() {
			return v
		}
		current = current.Key("Parent")
	}
	return pdf.Value{}
}

// parseRect reads a [llx lly urx ury] array, normalizing inverted corners
func parseRect(v pdf.Value) (extract.Rect, error) {
	if v.Kind() != pdf.Array {
		return extract.Rect{}, fmt.Errorf("box is not an array: %v", v.Kind())
	}
	if v.Len() != 4 {
		return extract.Rect{}, fmt.Errorf("invalid box array length: %d, expected 4", v.Len())
	}

	var coords [4]float64
	for i := range coords {
		n := v.Index(i)
		switch n.Kind() {
		case pdf.Integer:
			coords[i] = float64(n.Int64())
		case pdf.Real:
			coords[i] = n.Float64()
		default:
			return extract.Rect{}, fmt.Errorf("invalid coordinate type at index %d: %v", i, n.Kind())
		}
	}

	llx, lly, urx, ury := coords[0], coords[1], coords[2], coords[3]
	if llx > urx {
		llx, urx = urx, llx
	}
	if lly > ury {
		lly, ury = ury, lly
	}

	return extract.Rect{LLX: llx, LLY: lly, URX: urx, URY: ury}, nil
}
