package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an application error that can be chained with additional context
// and carries the HTTP status code to surface at the transport boundary.
type Error interface {
	error
	Unwrap() error
	// Msg returns a new error wrapping this one with a different message.
	Msg(msg string) Error
	// Err returns a new error with the same message wrapping the given causes.
	Err(err ...error) Error
	// MsgErr returns a new error with a different message wrapping the given causes.
	MsgErr(msg string, err ...error) Error
	// SetStatusCode returns a new error with the given HTTP status code.
	SetStatusCode(code int) Error
	// StatusCode returns the HTTP status code for this error chain, or 0 if unset.
	StatusCode() int
	// ErrorAll returns the messages of the whole chain, outermost first.
	ErrorAll() string
}

type appError struct {
	msg        string
	statusCode int
	err        error
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) Unwrap() error {
	return e.err
}

func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		statusCode: e.statusCode,
		err:        e,
	}
}

func (e *appError) Err(err ...error) Error {
	return &appError{
		msg:        e.msg,
		statusCode: e.statusCode,
		err:        joinCauses(e, err),
	}
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	return &appError{
		msg:        msg,
		statusCode: e.statusCode,
		err:        joinCauses(e, err),
	}
}

func (e *appError) SetStatusCode(code int) Error {
	return &appError{
		msg:        e.msg,
		statusCode: code,
		err:        e.err,
	}
}

func (e *appError) StatusCode() int {
	if e.statusCode != 0 {
		return e.statusCode
	}
	var chained Error
	if e.err != nil && errors.As(e.err, &chained) {
		return chained.StatusCode()
	}
	return 0
}

func (e *appError) ErrorAll() string {
	parts := []string{e.msg}
	for err := e.err; err != nil; err = errors.Unwrap(err) {
		if m := err.Error(); m != "" && m != parts[len(parts)-1] {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, ": ")
}

func joinCauses(parent error, causes []error) error {
	f := "%w"
	args := []any{parent}
	for _, c := range causes {
		if c == nil {
			continue
		}
		f += " %w"
		args = append(args, c)
	}
	return fmt.Errorf(f, args...)
}

func New(msg string) Error {
	return &appError{msg: msg}
}
