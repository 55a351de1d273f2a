// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfdoc

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// defaultFontSize is used for the gap threshold when a run has no size
const defaultFontSize = 12

// textByRows extracts text row by row, using glyph positions for spacing
func textByRows(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("row extraction failed: %v", r)
		}
	}()

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}

	// PDF user space grows upwards, so the top row has the largest Y
	sort.SliceStable(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) > averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// averageY calculates the average Y coordinate for text elements in a row
func averageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}

	var totalY float64
	for _, element := range textElements {
		totalY += element.Y
	}

	return totalY / float64(len(textElements))
}

// reconstructRowText joins a row's runs left to right, inserting a space
// where the horizontal gap exceeds a fifth of the font size
func reconstructRowText(textElements []pdf.Text) string {
	if len(textElements) == 0 {
		return ""
	}

	sortedElements := make([]pdf.Text, len(textElements))
	copy(sortedElements, textElements)
	sort.SliceStable(sortedElements, func(i, j int) bool {
		return sortedElements[i].X < sortedElements[j].X
	})

	var buf bytes.Buffer
	for i, element := range sortedElements {
		buf.WriteString(element.S)

		if i == len(sortedElements)-1 {
			break
		}
		next := sortedElements[i+1]
		gap := next.X - (element.X + element.W)

		fontSize := element.FontSize
		if fontSize <= 0 {
			fontSize = defaultFontSize
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}

	return buf.String()
}
