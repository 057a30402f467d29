package verify

import (
	"errors"
	"fmt"
)

// Kind classifies why a check failed.
type Kind string

// Failure kinds.
const (
	MissingPath        Kind = "missing_path"
	WrongType          Kind = "wrong_type"
	ContentMismatch    Kind = "content_mismatch"
	ParseFailure       Kind = "parse_failure"
	EnvironmentTooOld  Kind = "environment_too_old"
	RuntimeUnavailable Kind = "runtime_unavailable"
	Unexpected         Kind = "unexpected"
)

// ErrChecksFailed is returned by the CLI when at least one check failed.
var ErrChecksFailed = errors.New("verification failed")

// CheckError is the failure signal a check returns.
type CheckError struct {
	Kind Kind
	Path string // offending path, if any
	Msg  string
	Err  error
}

// Error returns the one-line message printed next to the check name.
func (e *CheckError) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CheckError) Unwrap() error {
	return e.Err
}

func failf(kind Kind, path, format string, args ...interface{}) error {
	return &CheckError{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func unexpected(err error) error {
	return &CheckError{Kind: Unexpected, Msg: "Unexpected error: " + err.Error(), Err: err}
}

// KindOf returns the failure kind carried by err, or Unexpected for errors
// that are not a *CheckError.
func KindOf(err error) Kind {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return Unexpected
}
