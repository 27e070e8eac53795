package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the handler layer free of per-type switches.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found (or is not owned by the caller)
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// InvalidParentError indicates a parent/folder reference that does not
	// resolve to a resource owned by the caller
	InvalidParentError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// UpstreamStoreError indicates an unexpected object-store failure
	UpstreamStoreError struct {
		Message string
	}

	// PersistenceError indicates a document-store failure
	PersistenceError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string      { return e.Message }
func (e *ValidationError) Error() string    { return e.Message }
func (e *InvalidParentError) Error() string { return e.Message }
func (e *UnauthorizedError) Error() string  { return e.Message }
func (e *UpstreamStoreError) Error() string { return e.Message }
func (e *PersistenceError) Error() string   { return e.Message }

func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int    { return http.StatusBadRequest }
func (e *InvalidParentError) StatusCode() int { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int  { return http.StatusUnauthorized }
func (e *UpstreamStoreError) StatusCode() int { return http.StatusBadGateway }
func (e *PersistenceError) StatusCode() int   { return http.StatusInternalServerError }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidParent = errors.New("invalid parent")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUpstream      = errors.New("object store failure")
	ErrPersistence   = errors.New("persistence failure")
)

func (e *NotFoundError) Is(target error) bool      { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool    { return target == ErrValidation }
func (e *InvalidParentError) Is(target error) bool { return target == ErrInvalidParent }
func (e *UnauthorizedError) Is(target error) bool  { return target == ErrUnauthorized }
func (e *UpstreamStoreError) Is(target error) bool { return target == ErrUpstream }
func (e *PersistenceError) Is(target error) bool   { return target == ErrPersistence }

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (user, folder, file)
	ResourceID   string // ID of the existing/conflicting resource
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
