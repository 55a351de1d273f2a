// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of an extraction failure
type ErrorType string

const (
	// Command-line input errors
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"

	// File-related errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"

	// Document structure and content errors
	ErrorTypeParse ErrorType = "parse_error"

	// Page selection errors
	ErrorTypeIndexOutOfRange ErrorType = "index_out_of_range"
)

// Error describes a failed extraction. Every failure aborts the invocation.
type Error struct {
	Type    ErrorType
	Path    string
	Page    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	var parts []string

	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Page != 0 {
		parts = append(parts, fmt.Sprintf("page %d", e.Page))
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	if len(parts) == 0 {
		return msg
	}
	return strings.Join(parts, ", ") + ": " + msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new extraction error
func NewError(errorType ErrorType, path string, page int, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Path:    path,
		Page:    page,
		Message: message,
		Cause:   cause,
	}
}

// TypeOf returns the ErrorType carried by err, or "" if err is not an *Error.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}

// IsType reports whether err carries the given ErrorType
func IsType(err error, errorType ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsType(err, ErrorTypeInvalidArgument):
		return 2
	default:
		return 1
	}
}
