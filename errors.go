package pathabs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrKindMismatch    = errors.New("kind mismatch")
	ErrUnsupportedKind = errors.New("unsupported entry kind")
	ErrIO              = errors.New("io error")
	ErrDecode          = errors.New("decode error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newNotFoundError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrNotFound,
		msg:        msg,
		cause:      cause,
	}
}

func newKindMismatchError(msg string) error {
	return &wrapError{
		underlying: ErrKindMismatch,
		msg:        msg,
	}
}

func newUnsupportedKindError(msg string) error {
	return &wrapError{
		underlying: ErrUnsupportedKind,
		msg:        msg,
	}
}

func newIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIO,
		msg:        msg,
		cause:      cause,
	}
}

func newDecodeError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrDecode,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
