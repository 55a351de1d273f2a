// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"strings"
	"testing"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello   world\n\nfoo", "Hello world foo"},
		{"", ""},
		{" \t\n ", ""},
		{"  leading and trailing  ", "leading and trailing"},
		{"tab\tand\r\nCRLF", "tab and CRLF"},
		{"no-break\u00a0space", "no-break space"},
		{"ideographic\u3000\u3000space", "ideographic space"},
		{"single", "single"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhitespace(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeWhitespace_Law(t *testing.T) {
	inputs := []string{
		"a  b", "\n\na\tb\r\n", "  x  ", "\u2003em\u2003space\u2003", "line\n\n\nbreaks", "",
	}

	for _, input := range inputs {
		out := NormalizeWhitespace(input)

		if out != "" {
			assert.False(t, unicode.IsSpace(rune(out[0])), "leading whitespace in %q", out)
			assert.False(t, unicode.IsSpace(rune(out[len(out)-1])), "trailing whitespace in %q", out)
		}
		prevSpace := false
		for _, r := range out {
			isSpace := unicode.IsSpace(r)
			assert.False(t, prevSpace && isSpace, "consecutive whitespace in %q", out)
			if isSpace {
				assert.Equal(t, ' ', r, "only ASCII spaces remain in %q", out)
			}
			prevSpace = isSpace
		}

		assert.Equal(t, out, NormalizeWhitespace(out), "normalization is idempotent for %q", input)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"disabled", "one two three", 0, "one two three"},
		{"negative width", "one two", -1, "one two"},
		{"fits", "one two", 7, "one two"},
		{"greedy", "one two three four", 9, "one two\nthree\nfour"},
		{"keeps line breaks", "ab cd\nef", 2, "ab\ncd\nef"},
		{"empty line kept", "a\n\nb", 5, "a\n\nb"},
		{"long word split", "abcdefgh", 3, "abc\ndef\ngh"},
		{"long word then short", "abcdefgh ij", 3, "abc\ndef\ngh\nij"},
		{"wide runes", "日本語 テキスト", 6, "日本語\nテキス\nト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog, then keeps running across the field."
	for width := 1; width <= 20; width++ {
		for _, line := range strings.Split(Wrap(text, width), "\n") {
			assert.LessOrEqual(t, runewidth.StringWidth(line), width, "width %d line %q", width, line)
		}
	}
}
