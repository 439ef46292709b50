package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrRead           = errors.New("read error")
	ErrColumnNotFound = errors.New("interest rate column not found")
	ErrEmptyResult    = errors.New("no valid interest rate data")
)

// ErrorKind is a coarse-grained categorization for pipeline errors.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindReadError      ErrorKind = "read_error"
	KindColumnNotFound ErrorKind = "column_not_found"
	KindEmptyResult    ErrorKind = "empty_result"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: source file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return kindSentinel(e.Kind) == target
}

// IsKind helps callers classify errors without inspecting messages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return errors.Is(err, kindSentinel(kind))
}

func kindSentinel(kind ErrorKind) error {
	switch kind {
	case KindNotFound:
		return ErrNotFound
	case KindReadError:
		return ErrRead
	case KindColumnNotFound:
		return ErrColumnNotFound
	case KindEmptyResult:
		return ErrEmptyResult
	default:
		return nil
	}
}
