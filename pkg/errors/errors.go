package gateway_errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrConflict           = errors.New("conflict")
)

// StoreError is returned when the contacts store is unreachable or rejects a
// statement.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewStoreError wraps err as a StoreError for operation op. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// DownstreamError is returned when the downstream service cannot be reached,
// answers with a non-2xx status, or returns something that is not JSON.
// StatusCode is zero when no response was received.
type DownstreamError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *DownstreamError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("downstream: %s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("downstream: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reached reports whether the downstream service produced an HTTP response.
func (e *DownstreamError) Reached() bool {
	return e != nil && e.StatusCode != 0
}
