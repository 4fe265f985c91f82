package admin

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines admin export error kinds.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindInternal   ErrorKind = "internal"
)

// AdminError wraps errors with a kind.
type AdminError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *AdminError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *AdminError) Unwrap() error {
	return e.Err
}

// NewError creates a new admin error.
func NewError(kind ErrorKind, msg string, err error) *AdminError {
	return &AdminError{Kind: kind, Msg: msg, Err: err}
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

	msg := err.Error()
	var adminErr *AdminError
	if errors.As(err, &adminErr) && adminErr.Msg != "" {
		msg = adminErr.Msg
	}

	switch KindFromError(err) {
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("not_found")
	case KindTimeout:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("timeout")
	case KindCanceled:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("canceled")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its admin error kind. An explicit
// AdminError kind wins over a wrapped context error.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var adminErr *AdminError
	if errors.As(err, &adminErr) {
		return adminErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	return KindInternal
}
