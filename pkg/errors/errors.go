// Package errors provides structured error types for spectraplot.
// Errors include context, causes, and the list of valid alternatives for
// failed name lookups.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryDataset  Category = "dataset"  // Named table lookup errors
	CategoryResource Category = "resource" // Background bitmap / resources errors
	CategoryRender   Category = "render"   // Chart assembly and output errors
	CategoryConfig   Category = "config"   // Configuration loading/parsing errors
	CategoryCommand  Category = "command"  // Shell command errors
	CategoryInternal Category = "internal" // Internal/unexpected errors
)

// PlotError is a structured error with context and valid-name diagnostics.
// It implements the error interface and supports error wrapping.
type PlotError struct {
	// Code is a unique identifier for this error type (e.g., "CMFS_NOT_FOUND")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// ValidNames holds the sorted list of names that would have been accepted,
	// populated for lookup failures only
	ValidNames []string
}

// Error implements the error interface.
func (e *PlotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
// This enables errors.Is() and errors.As() to work with PlotError.
func (e *PlotError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two PlotErrors match if they have the same Code.
func (e *PlotError) Is(target error) bool {
	if t, ok := target.(*PlotError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new PlotError with the given code, category, and message.
func New(code string, category Category, message string) *PlotError {
	return &PlotError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// Newf creates a new PlotError with a formatted message.
func Newf(code string, category Category, format string, args ...interface{}) *PlotError {
	return New(code, category, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a PlotError.
func Wrap(cause error, code string, category Category, message string) *PlotError {
	return &PlotError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
		Cause:    cause,
	}
}

// NotFound creates a lookup-failure error naming the bad key and carrying the
// full sorted list of valid names. This is the single domain error kind: it
// always aborts the plot and is never recovered internally.
func NotFound(code, kind, key string, valid []string) *PlotError {
	names := append([]string(nil), valid...)
	sort.Strings(names)
	e := Newf(code, CategoryDataset,
		"%q not found in factory %s: %q", key, kind, names)
	e.ValidNames = names
	return e.WithContext("key", key)
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *PlotError) WithContext(key, value string) *PlotError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *PlotError) WithCause(cause error) *PlotError {
	e.Cause = cause
	return e
}

// HasContext returns true if the error has context information.
func (e *PlotError) HasContext() bool {
	return len(e.Context) > 0
}

// ContextString returns a formatted string of all context entries.
func (e *PlotError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, e.Context[k]))
	}
	return strings.Join(parts, ", ")
}

// AsPlotError extracts a PlotError from an error chain.
// Returns the PlotError and true if found, nil and false otherwise.
func AsPlotError(err error) (*PlotError, bool) {
	for err != nil {
		if pe, ok := err.(*PlotError); ok {
			return pe, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}

// IsNotFound reports whether err is a lookup failure of any dataset kind.
func IsNotFound(err error) bool {
	pe, ok := AsPlotError(err)
	return ok && len(pe.ValidNames) > 0
}
