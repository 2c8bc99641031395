package domain

import (
	"errors"
	"fmt"
)

// UnavailableReason distinguishes why a schedule rejected a booking.
type UnavailableReason string

const (
	ReasonFull      UnavailableReason = "full"
	ReasonDeparted  UnavailableReason = "departed"
	ReasonCancelled UnavailableReason = "cancelled"
)

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UnavailableError means the schedule exists but cannot take a booking.
// Reason keeps the user-facing message precise (full vs departed vs cancelled).
type UnavailableError struct {
	ScheduleID string
	Reason     UnavailableReason
}

func (e UnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("schedule %s is not bookable", e.ScheduleID)
	}
	return fmt.Sprintf("schedule %s is not bookable: %s", e.ScheduleID, e.Reason)
}

// CapacityExhaustedError is raised by the seat decrement itself when it finds
// zero seats, i.e. an earlier availability check went stale. The caller must
// re-query before deciding to retry.
type CapacityExhaustedError struct {
	ScheduleID string
}

func (e CapacityExhaustedError) Error() string {
	return fmt.Sprintf("schedule %s has no seats left", e.ScheduleID)
}

// PersistenceError means a booking record could not be durably stored after
// the seat was already committed. It must never be conflated with a plain
// booking failure: the seat is consumed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsCapacityExhausted(err error) bool {
	var target CapacityExhaustedError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
