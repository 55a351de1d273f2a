// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedComponent string

func (n namedComponent) GetComponentName() string { return string(n) }

func TestNilObserverIsSafe(t *testing.T) {
	var o *StandardObserver

	assert.Equal(t, ObservabilityOff, o.Level())
	o.StartTiming("c", "op", "f")(true, nil)
	o.StartStep("c", "step", "")(false, "x")
	o.LogDetail("c", "detail")
	o.LogOperation(StandardObservabilityData{})
	o.LogComponents(namedComponent("c"))
}

func TestNewStandardObserver_NilWriterDisables(t *testing.T) {
	o := NewStandardObserver(ObservabilityDebug, nil)
	assert.Equal(t, ObservabilityOff, o.Level())
	assert.Nil(t, o.DebugObserver)
}

func TestStartTiming_DebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	clock := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	o.now = func() time.Time { return clock }

	finish := o.StartTiming("extractor", "extract", "doc.pdf")
	clock = clock.Add(25 * time.Millisecond)
	finish(false, map[string]interface{}{"error": "boom"})

	var data StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "extractor", data.Component)
	assert.Equal(t, "extract", data.Operation)
	assert.Equal(t, "doc.pdf", data.FilePath)
	assert.Equal(t, int64(25), data.DurationMs)
	assert.False(t, data.Success)
	assert.Equal(t, "boom", data.Error)
	assert.Equal(t, "req-20240102-030405", data.RequestID)
}

func TestMetricsLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityMetrics, &buf)

	o.StartTiming("c", "op", "")(true, nil)
	o.StartStep("c", "step", "")(true, "")
	o.LogDetail("c", "detail")

	assert.Empty(t, buf.String())
}

func TestDebugSteps(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	outer := o.StartStep("extractor", "open document", "doc.pdf")
	inner := o.StartStep("pdf_document", "validate (strict)", "")
	o.LogDetail("pdf_document", "checking xref")
	inner(false, "broken xref")
	outer(true, "2 pages")
	o.LogComponents(namedComponent("extractor"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "> extractor: open document (doc.pdf)", lines[0])
	assert.Equal(t, "  > pdf_document: validate (strict)", lines[1])
	assert.Equal(t, "       - pdf_document: checking xref", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "  < pdf_document: validate (strict) failed ("), lines[3])
	assert.True(t, strings.HasSuffix(lines[3], "broken xref"), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "< extractor: open document completed ("), lines[4])
	assert.Equal(t, "   # pagetext: component = extractor", lines[5])
}
