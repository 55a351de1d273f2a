// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records timed operations for all components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // Set when running at ObservabilityDebug
	now           func() time.Time
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer. A nil writer disables output.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if writer == nil {
		level = ObservabilityOff
	}
	o := &StandardObserver{
		level:  level,
		writer: writer,
		now:    time.Now,
	}
	if level == ObservabilityDebug {
		o.DebugObserver = newDebugObserver(writer)
	}
	return o
}

// Level returns the configured level
func (o *StandardObserver) Level() ObservabilityLevel {
	if o == nil {
		return ObservabilityOff
	}
	return o.level
}

// StartTiming returns a function to complete timing. Safe on a nil observer.
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	if o == nil || o.level == ObservabilityOff {
		return func(bool, map[string]interface{}) {}
	}
	start := o.now()

	return func(success bool, metadata map[string]interface{}) {
		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: o.now().Sub(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}
		if !success && metadata != nil {
			if msg, ok := metadata["error"].(string); ok {
				data.Error = msg
			}
		}

		o.LogOperation(data)
	}
}

// StartStep begins a debug step; the returned function closes it.
// Without a debug observer it is a no-op.
func (o *StandardObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	if o == nil || o.DebugObserver == nil {
		return func(bool, string) {}
	}
	return o.DebugObserver.StartStep(component, step, filePath)
}

// LogDetail forwards a detail line to the debug observer, if any
func (o *StandardObserver) LogDetail(component, detail string) {
	if o == nil || o.DebugObserver == nil {
		return
	}
	o.DebugObserver.LogDetail(component, detail)
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + o.now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		_ = json.NewEncoder(o.writer).Encode(data)
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	Page       int                    `json:"page,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
