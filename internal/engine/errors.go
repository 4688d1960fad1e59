package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrSweepInProgress is returned by TriggerSweep while another sweep runs.
	ErrSweepInProgress = errors.New("sweep already in progress")

	// ErrSweepLocked is returned when another instance holds the sweep lock.
	ErrSweepLocked = errors.New("sweep lock held by another instance")

	// ErrNoBookingTarget marks a restaurant with no platform to check.
	ErrNoBookingTarget = errors.New("restaurant has no booking target")
)

// PersistenceError wraps a store failure. It aborts the current target only.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
