package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an error with how the request boundary should report it.
type Kind string

const (
	KindInvalidInput Kind = "INVALID_INPUT"
	KindUpstream     Kind = "UPSTREAM_FAILURE"
	KindStorage      Kind = "STORAGE_FAILURE"
	KindInternal     Kind = "INTERNAL_ERROR"
)

type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf extracts the tag from err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
