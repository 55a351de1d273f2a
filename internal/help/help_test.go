// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowGeneralHelp(t *testing.T) {
	var buf bytes.Buffer
	NewSystem(&buf, true).ShowGeneralHelp()
	out := buf.String()

	assert.Contains(t, out, "pagetext [options] <pdf_path> <page_number>")
	for _, opt := range Options {
		assert.Contains(t, out, opt.Name)
	}
	assert.NotContains(t, out, "\x1b[", "no escape codes with color disabled")
}

func TestShowProfiles(t *testing.T) {
	var buf bytes.Buffer
	NewSystem(&buf, true).ShowProfiles(
		[]string{"geometry", "raw"},
		map[string]string{"geometry": "With crop box", "raw": "Plain text"},
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Available profiles:", lines[0])
	assert.Contains(t, lines[1], "geometry")
	assert.Contains(t, lines[1], "With crop box")
	assert.Contains(t, lines[2], "raw")

	buf.Reset()
	NewSystem(&buf, true).ShowProfiles(nil, nil)
	assert.Equal(t, "No profiles defined.\n", buf.String())
}
