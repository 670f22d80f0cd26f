// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errs

import (
	"errors"
	"net/http"
)

// HTTPError is the JSON body written for every failed API request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ToHTTP converts any error into the response body clients receive.
//
// Backend and Config failures never leak their cause; the generic status
// text is used instead.
func ToHTTP(err error) HTTPError {
	kind := KindOf(err)
	status := kind.Status()

	message := http.StatusText(status)
	var e *Error
	if errors.As(err, &e) && e.Message != "" && kind != Backend && kind != Config {
		message = e.Message
	}

	return HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}
