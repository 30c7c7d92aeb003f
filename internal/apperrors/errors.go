// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package apperrors provides the client-visible error taxonomy. Each Error
// carries a Code that selects both the HTTP status and the message key.
package apperrors

import "errors"

// Error is a domain error with a machine-readable code.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Internal message (for logs)
	Cause   error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and an internal message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// E is shorthand for a code-only error, used for guard-clause failures.
func E(code Code) *Error {
	return &Error{Code: code}
}

// CodeOf extracts the Code from err, or CodeInternal when err is not a
// domain error.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// StatusOf returns the HTTP status for err. nil maps to 200.
func StatusOf(err error) int {
	if err == nil {
		return 200
	}
	return CodeOf(err).HTTPStatus()
}

// HasCode reports whether err is a domain error with the given code.
func HasCode(err error, code Code) bool {
	return errors.Is(err, E(code))
}
