package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindConfig     Kind = "config"
	KindUpstream   Kind = "upstream"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// ErrUnsupportedFormat is returned for uploads that are neither csv nor a spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrColumnOutOfRange is returned when a mapping override targets a missing column.
var ErrColumnOutOfRange = errors.New("column index out of range")

// ErrUnknownRole is returned when a mapping override names a role that does not exist.
var ErrUnknownRole = errors.New("unknown column role")

// Error is the application error surfaced to transports.
// Message is the public summary, Details the diagnostic text.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

type Opts struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// Wrap attaches kind and public message to err. Empty opts fields are
// derived from err itself; an *Error passed in is returned unchanged.
func Wrap(err error, opts *Opts) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if opts == nil {
		opts = &Opts{}
	}

	var e = &Error{
		Kind:    opts.Kind,
		Message: opts.Message,
		Details: opts.Details,
		Err:     err,
	}
	if e.Kind == "" {
		e.Kind = KindInternal
	}
	if e.Message == "" {
		e.Message = err.Error()
	}
	if e.Details == "" {
		e.Details = err.Error()
	}

	return e
}

func Validation(err error) *Error {
	return Wrap(err, &Opts{Kind: KindValidation, Message: "Bad request"})
}

func NotFound(what string) *Error {
	return New(KindNotFound, "Not found", what)
}

// As reports whether err carries an *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
