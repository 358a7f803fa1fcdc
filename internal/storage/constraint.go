// Package storage defines the narrow query contract between the filter
// builder and the record store: a flat conjunction of field predicates.
// The store only supports equality, inclusive range bounds, and array
// membership, combined with AND — no OR, no NOT, no free-text search.
package storage

import (
	"errors"
	"fmt"
)

// Op identifies a predicate operator supported by the store.
type Op string

const (
	OpEq       Op = "=="
	OpGte      Op = ">="
	OpLte      Op = "<="
	OpContains Op = "array-contains"
)

// Constraint is a single field predicate. A query is the conjunction of all
// constraints in a slice; an empty slice is not a valid query (callers must
// short-circuit before reaching the store).
type Constraint struct {
	Field string
	Op    Op
	Value interface{}
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}

// FailureKind classifies store failures so operation boundaries can choose
// the right user-facing message.
type FailureKind int

const (
	// FailureTransient covers network and availability errors. Safe to
	// retry by re-triggering the operation; no automatic retry is done.
	FailureTransient FailureKind = iota
	// FailureMissingIndex means the store rejected the constraint
	// combination because it lacks a composite index for it.
	FailureMissingIndex
)

// StoreError wraps a store failure with its classification.
type StoreError struct {
	Kind FailureKind
	Err  error
}

func (e *StoreError) Error() string {
	if e.Kind == FailureMissingIndex {
		return fmt.Sprintf("missing composite index: %v", e.Err)
	}
	return fmt.Sprintf("store failure: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ErrMissingIndex is the sentinel for unsupported constraint combinations.
// Callers match it with errors.Is to show an actionable message instead of
// a generic failure.
var ErrMissingIndex = errors.New("query requires a composite index")

// Is lets errors.Is(err, ErrMissingIndex) match classified store errors.
func (e *StoreError) Is(target error) bool {
	return target == ErrMissingIndex && e.Kind == FailureMissingIndex
}

// Transient wraps err as a retryable store failure.
func Transient(err error) *StoreError {
	return &StoreError{Kind: FailureTransient, Err: err}
}

// MissingIndex wraps err as a query-shape failure.
func MissingIndex(err error) *StoreError {
	return &StoreError{Kind: FailureMissingIndex, Err: err}
}
