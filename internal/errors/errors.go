// Package errors provides sentinel errors and custom error types for the markstage application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotRepository indicates that a path could not be opened as a Git repository
	ErrNotRepository = errors.New("not a git repository")

	// ErrUnrepresentablePath indicates that a status entry carries no usable path
	ErrUnrepresentablePath = errors.New("status entry has no representable path")

	// ErrUnexpectedStatus indicates that a mark file is in a state other than
	// a plain working-tree modification
	ErrUnexpectedStatus = errors.New("unexpected mark file status")
)

// NotRepositoryError reports a path that failed to open as a repository.
// The open failure is kept as the cause so operators can tell "not a
// repository" apart from "permission denied".
type NotRepositoryError struct {
	Path  string
	Cause error
}

func (e *NotRepositoryError) Error() string {
	return fmt.Sprintf("the path %s is not a valid repository", e.Path)
}

// Is returns true if the target error is ErrNotRepository
func (e *NotRepositoryError) Is(target error) bool {
	return target == ErrNotRepository
}

// Unwrap returns the underlying open error
func (e *NotRepositoryError) Unwrap() error {
	return e.Cause
}

// NewNotRepositoryError creates a new NotRepositoryError
func NewNotRepositoryError(path string, cause error) *NotRepositoryError {
	return &NotRepositoryError{Path: path, Cause: cause}
}

// UnexpectedStatusError reports a mark file whose status is not the single
// expected working-tree-modified value.
type UnexpectedStatusError struct {
	Path   string
	Status string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("the mark file %s has an unexpected status: %s", e.Path, e.Status)
}

// Is returns true if the target error is ErrUnexpectedStatus
func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// NewUnexpectedStatusError creates a new UnexpectedStatusError
func NewUnexpectedStatusError(path string, status string) *UnexpectedStatusError {
	return &UnexpectedStatusError{Path: path, Status: status}
}
