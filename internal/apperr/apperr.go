// Package apperr defines the error kinds returned by every tracker operation.
//
// Callers match a kind with errors.Is against the sentinels:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
//
// The rendered message keeps the kind as a prefix so it survives flattening
// to text at the host boundary.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	InvalidInput Kind = iota + 1
	NotFound
	DatabaseError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "Invalid input"
	case NotFound:
		return "Not found"
	case DatabaseError:
		return "Database error"
	default:
		return "Unknown error"
	}
}

var (
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrNotFound     = &Error{Kind: NotFound}
	ErrDatabase     = &Error{Kind: DatabaseError}
)

// Error carries a kind, a human readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against a bare kind sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

func Invalid(msg string) error {
	return &Error{Kind: InvalidInput, Msg: msg}
}

func Invalidf(format string, args ...any) error {
	return &Error{Kind: InvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to cause. The cause stays reachable
// through errors.Is / errors.As.
func Wrap(kind Kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Database classifies err as a storage failure unless it already has a kind.
func Database(err error) error {
	if err == nil {
		return nil
	}
	var kinded *Error
	if errors.As(err, &kinded) {
		return err
	}
	return &Error{Kind: DatabaseError, Err: err}
}

// KindOf returns the kind of err, or 0 when err carries none.
func KindOf(err error) Kind {
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	return 0
}
