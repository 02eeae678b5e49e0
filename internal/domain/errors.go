package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrPathNotFound indicates the local input path does not exist
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotADirectory indicates the local input path is not a directory
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrCloneFailed indicates the version-control client could not clone the repository
	ErrCloneFailed = errors.New("clone failed")

	// ErrInvalidInput indicates the input could not be classified
	ErrInvalidInput = errors.New("invalid input")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")

	// ErrUnknownCloneMethod indicates an unsupported clone method was configured
	ErrUnknownCloneMethod = errors.New("unknown clone method")

	// ErrUnknownEncoding indicates an unsupported character encoding was configured
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// CloneError represents a failed clone, carrying the client's diagnostic output
type CloneError struct {
	URL    string
	Method string
	Output string
	Err    error
}

func (e *CloneError) Error() string {
	output := strings.TrimSpace(e.Output)
	if output != "" {
		return fmt.Sprintf("error cloning repository %s (%s): %s", e.URL, e.Method, output)
	}
	return fmt.Sprintf("error cloning repository %s (%s): %v", e.URL, e.Method, e.Err)
}

func (e *CloneError) Unwrap() []error {
	return []error{ErrCloneFailed, e.Err}
}

// NewCloneError creates a new CloneError
func NewCloneError(url, method, output string, err error) *CloneError {
	return &CloneError{
		URL:    url,
		Method: method,
		Output: output,
		Err:    err,
	}
}

// OutputError represents a failure to create or write one of the output artifacts
type OutputError struct {
	Path string
	Op   string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("error %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// NewOutputError creates a new OutputError
func NewOutputError(op, path string, err error) *OutputError {
	return &OutputError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
