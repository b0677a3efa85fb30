package build

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines build error kinds.
type ErrorKind string

const (
	KindConfig    ErrorKind = "config"
	KindTheme     ErrorKind = "theme"
	KindDiscovery ErrorKind = "discovery"
	KindNoInput   ErrorKind = "no_input"
	KindRecord    ErrorKind = "record"
	KindRender    ErrorKind = "render"
	KindInternal  ErrorKind = "internal"
)

// BuildError wraps errors with a kind.
type BuildError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *BuildError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewError creates a new build error.
func NewError(kind ErrorKind, msg string, err error) *BuildError {
	return &BuildError{Kind: kind, Msg: msg, Err: err}
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindInternal
	msg := err.Error()

	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		kind = buildErr.Kind
		if buildErr.Msg != "" {
			msg = buildErr.Msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = KindRender
	}

	switch kind {
	case KindConfig, KindRecord:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode(string(kind))
	case KindTheme, KindDiscovery, KindNoInput:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode(string(kind))
	case KindRender:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode(string(kind))
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its build error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindRender
	}

	return KindInternal
}
