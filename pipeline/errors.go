package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a pipeline failure for the caller.
type Kind string

const (
	// BadInput marks a malformed request, rejected before any backend call.
	BadInput Kind = "bad_input"
	// BackendUnavailable marks a transport failure talking to a backend.
	BackendUnavailable Kind = "backend_unavailable"
	// InvalidResponse marks a reply that did not parse or failed the mode schema.
	InvalidResponse Kind = "invalid_response"
	// BothBackendsFailed is terminal and only reported for additive modes.
	BothBackendsFailed Kind = "both_backends_failed"
)

// Error is a classified pipeline failure wrapping its cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

func errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// KindOf extracts the failure class, or empty for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
