package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates absence of a record.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a business rule violation.
	ErrValidation = errors.New("validation error")
	// ErrEmpty indicates a picker was requested with zero candidates.
	ErrEmpty = errors.New("nothing available")
	// ErrUnauthorized indicates a privileged action by a non-administrator.
	ErrUnauthorized = errors.New("unauthorized")
)

// StoreError wraps an underlying persistence failure. The flow that hit
// it aborts and the user gets a generic failure message; the cause stays
// in logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Code returns a stable error code for structured logs.
func (e *StoreError) Code() string { return "STORE_ERROR" }

// NewStoreError wraps err unless it is already one of the domain
// sentinels, which must keep their identity for errors.Is checks.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrEmpty) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
