// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error by what the caller can do about it.
type Kind uint8

const (
	// Backend is the zero value: anything not classified otherwise is a
	// server-side failure.
	Backend Kind = iota
	NotFound
	Conflict
	BadRequest
	Config
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case BadRequest:
		return "bad request"
	case Config:
		return "config"
	default:
		return "backend"
	}
}

// Status maps the kind onto an HTTP status code.
func (k Kind) Status() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the tagged error type returned by the store, the config
// loader and the handlers.
//
// Op names the operation that failed ("store.GetApplication"), Message
// is safe to show to API clients, Err is the underlying cause.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error.
func E(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func NewNotFoundError(op, message string) *Error {
	return E(NotFound, op, message, nil)
}

func NewConflictError(op, message string, err error) *Error {
	return E(Conflict, op, message, err)
}

func NewBadRequestError(op, message string, err error) *Error {
	return E(BadRequest, op, message, err)
}

func NewBackendError(op string, err error) *Error {
	return E(Backend, op, "", err)
}

func NewConfigError(message string, err error) *Error {
	return E(Config, "config", message, err)
}

// KindOf reports the kind of the first *Error in err's chain, or Backend
// when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Backend
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// MakeUpperCaseWithUnderscores converts "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
