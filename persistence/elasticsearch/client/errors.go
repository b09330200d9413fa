// The MIT License
//
// Copyright (c) 2020 Temporal Technologies Inc.  All rights reserved.
//
// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/olivere/elastic/v7"
)

type (
	// ErrorKind classifies engine failures so that callers do not have to
	// inspect raw client library error types.
	ErrorKind int

	// Error wraps an engine failure with its kind and HTTP status.
	Error struct {
		Kind    ErrorKind
		Status  int
		Message string
		err     error
	}
)

const (
	ErrorKindInternal ErrorKind = iota
	ErrorKindNotFound
	ErrorKindConflict
	ErrorKindTimeout
	ErrorKindUnavailable
	ErrorKindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not-found"
	case ErrorKindConflict:
		return "conflict"
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindUnavailable:
		return "unavailable"
	case ErrorKindInvalidArgument:
		return "invalid-argument"
	default:
		return "internal"
	}
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("elasticsearch %s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("elasticsearch %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

// convertError maps a client library error into the Error taxonomy.
// nil stays nil; already converted errors are returned unchanged.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	var converted *Error
	if errors.As(err, &converted) {
		return err
	}

	var esErr *elastic.Error
	if errors.As(err, &esErr) {
		return &Error{
			Kind:    kindFromStatus(esErr.Status),
			Status:  esErr.Status,
			Message: esErr.Error(),
			err:     err,
		}
	}

	kind := ErrorKindInternal
	switch {
	case elastic.IsTimeout(err):
		kind = ErrorKindTimeout
	case elastic.IsConnErr(err):
		kind = ErrorKindUnavailable
	}
	return &Error{
		Kind:    kind,
		Message: err.Error(),
		err:     err,
	}
}

func kindFromStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusConflict:
		return ErrorKindConflict
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrorKindTimeout
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrorKindUnavailable
	case http.StatusBadRequest:
		return ErrorKindInvalidArgument
	default:
		return ErrorKindInternal
	}
}

// IsNotFound returns true if err represents a missing document or index.
func IsNotFound(err error) bool {
	var converted *Error
	if errors.As(err, &converted) {
		return converted.Kind == ErrorKindNotFound
	}
	return elastic.IsNotFound(err)
}

// IsRetryable returns true if the operation that produced err can be retried.
func IsRetryable(err error) bool {
	return IsRetryableStatus(HttpStatus(err))
}

// HttpStatus extracts the HTTP status from an engine error, 0 if unknown.
func HttpStatus(err error) int {
	var converted *Error
	if errors.As(err, &converted) {
		return converted.Status
	}
	var esErr *elastic.Error
	if errors.As(err, &esErr) {
		return esErr.Status
	}
	return 0
}

// IsRetryableStatus returns true for statuses that indicate a transient failure.
func IsRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, // 408
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusServiceUnavailable,  // 503
		http.StatusInsufficientStorage: // 507
		return true
	}
	return false
}
