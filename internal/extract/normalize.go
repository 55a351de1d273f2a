// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace replaces every run of whitespace with a single space
// and trims both ends. Whitespace is anything unicode.IsSpace accepts.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Wrap breaks each line of s so that no output line is wider than width
// display columns. Words wider than width are split. A width of zero or
// less returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, width)...)
	}
	return strings.Join(wrapped, "\n")
}

// wrapLine greedily packs the space-separated words of line into rows
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var rows []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if currentWidth > 0 {
			rows = append(rows, current.String())
			current.Reset()
			currentWidth = 0
		}
	}

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		if wordWidth > width {
			flush()
			pieces := splitWord(word, width)
			rows = append(rows, pieces[:len(pieces)-1]...)
			last := pieces[len(pieces)-1]
			current.WriteString(last)
			currentWidth = runewidth.StringWidth(last)
			continue
		}

		if currentWidth > 0 && currentWidth+1+wordWidth > width {
			flush()
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	flush()

	return rows
}

// splitWord cuts word into pieces of at most width columns. A single rune
// wider than width still gets a piece of its own.
func splitWord(word string, width int) []string {
	var pieces []string
	var piece strings.Builder
	pieceWidth := 0

	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if pieceWidth > 0 && pieceWidth+rw > width {
			pieces = append(pieces, piece.String())
			piece.Reset()
			pieceWidth = 0
		}
		piece.WriteRune(r)
		pieceWidth += rw
	}
	if piece.Len() > 0 {
		pieces = append(pieces, piece.String())
	}
	return pieces
}
