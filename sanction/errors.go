package sanction

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation so callers can render the right
// response without string matching.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindConflict      ErrorKind = "conflict"
	KindAuthorization ErrorKind = "authorization"
	KindNotFound      ErrorKind = "not_found"
	KindStorage       ErrorKind = "storage"
	KindDelivery      ErrorKind = "delivery"
)

// Error is a classified operation failure with a human-readable reason.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error while keeping it reachable for
// errors.Is and errors.As.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return NewError(kind, format, args...)
}

func wrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return WrapError(kind, err, format, args...)
}

// KindOf returns the classification of err, or an empty kind for errors that
// did not come out of this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func isKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func IsValidation(err error) bool    { return isKind(err, KindValidation) }
func IsConflict(err error) bool      { return isKind(err, KindConflict) }
func IsAuthorization(err error) bool { return isKind(err, KindAuthorization) }
func IsNotFound(err error) bool      { return isKind(err, KindNotFound) }
func IsStorage(err error) bool       { return isKind(err, KindStorage) }
func IsDelivery(err error) bool      { return isKind(err, KindDelivery) }

// Reason returns the human-readable message for classified errors and the
// plain error text otherwise.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
