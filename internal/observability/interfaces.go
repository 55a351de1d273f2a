// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

// Observable interface for all components that need observability
type Observable interface {
	// GetComponentName returns the component identifier
	GetComponentName() string
}

// LogComponents records which components are wired into this run.
// Only the debug observer prints anything.
func (o *StandardObserver) LogComponents(components ...Observable) {
	if o == nil || o.DebugObserver == nil {
		return
	}
	for _, c := range components {
		o.DebugObserver.LogMetric("pagetext", "component", c.GetComponentName())
	}
}
