package usecase

import (
	"errors"
	"fmt"
)

// Service failures carry an explicit kind so handlers pick the HTTP status
// with errors.Is instead of inspecting message text. The message itself is
// the user-visible description.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("invalid parameter value")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func notFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}
