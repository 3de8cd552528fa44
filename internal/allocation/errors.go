// Package allocation implements the room and resource allocation
// engine: availability scans, greedy room/parking assignment, block
// reservation workflows, calendar blocking and reservation merging.
// Every write workflow runs inside one database transaction; either
// all of its writes commit or none do.  Failures are reported through
// a single Error type with a closed set of kinds so callers can branch
// deterministically instead of mixing result flags and thrown errors.
package allocation

import (
    "errors"
    "fmt"
)

// ErrorKind classifies engine failures.
type ErrorKind string

const (
    // KindValidation marks malformed or missing input (bad ids,
    // inverted date ranges).  Detected before any write.
    KindValidation ErrorKind = "VALIDATION"
    // KindConflict marks a requested room/date already occupied or a
    // merge rejected by the eligibility rules.
    KindConflict ErrorKind = "CONFLICT"
    // KindShortage marks insufficient free resources where the policy
    // is strict (parking, or rooms in all-or-nothing mode).
    KindShortage ErrorKind = "SHORTAGE"
    // KindStorage marks any lower-level database failure; the original
    // error is attached as cause.
    KindStorage ErrorKind = "STORAGE"
)

// Error is the engine's only error type.
type Error struct {
    Kind    ErrorKind
    Message string
    Err     error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
    }
    return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

func validationf(format string, a ...interface{}) *Error {
    return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, a...)}
}

func conflictf(format string, a ...interface{}) *Error {
    return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, a...)}
}

func shortagef(format string, a ...interface{}) *Error {
    return &Error{Kind: KindShortage, Message: fmt.Sprintf(format, a...)}
}

// storage wraps a lower-level failure, keeping the cause.
func storage(msg string, err error) *Error {
    return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// KindOf extracts the ErrorKind from any error returned by the engine.
// Unclassified errors count as storage failures.
func KindOf(err error) ErrorKind {
    var e *Error
    if errors.As(err, &e) {
        return e.Kind
    }
    return KindStorage
}
