// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver provides detailed step-by-step debugging
type DebugObserver struct {
	writer io.Writer
	indent int
}

func newDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{writer: writer}
}

// StartStep begins a processing step with indentation
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	start := time.Now()
	indentStr := strings.Repeat("  ", d.indent)

	if filePath != "" {
		fmt.Fprintf(d.writer, "%s> %s: %s (%s)\n", indentStr, component, step, filePath)
	} else {
		fmt.Fprintf(d.writer, "%s> %s: %s\n", indentStr, component, step)
	}
	d.indent++

	return func(success bool, details string) {
		d.indent--
		duration := time.Since(start)
		indentStr := strings.Repeat("  ", d.indent)

		status := "completed"
		if !success {
			status = "failed"
		}
		fmt.Fprintf(d.writer, "%s< %s: %s %s (%dms) %s\n",
			indentStr, component, step, status, duration.Milliseconds(), details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	indentStr := strings.Repeat("  ", d.indent)
	fmt.Fprintf(d.writer, "%s   - %s: %s\n", indentStr, component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	indentStr := strings.Repeat("  ", d.indent)
	fmt.Fprintf(d.writer, "%s   # %s: %s = %v\n", indentStr, component, metric, value)
}
