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
	"net/http"
	"testing"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertError_Nil(t *testing.T) {
	assert.NoError(t, convertError(nil))
}

func TestConvertError_AlreadyConverted(t *testing.T) {
	original := &Error{Kind: ErrorKindNotFound, Status: http.StatusNotFound, Message: "gone"}
	assert.Same(t, original, convertError(original).(*Error))
}

func TestConvertError_StatusMapping(t *testing.T) {
	testCases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusNotFound, ErrorKindNotFound},
		{http.StatusConflict, ErrorKindConflict},
		{http.StatusRequestTimeout, ErrorKindTimeout},
		{http.StatusGatewayTimeout, ErrorKindTimeout},
		{http.StatusTooManyRequests, ErrorKindUnavailable},
		{http.StatusBadGateway, ErrorKindUnavailable},
		{http.StatusServiceUnavailable, ErrorKindUnavailable},
		{http.StatusBadRequest, ErrorKindInvalidArgument},
		{http.StatusInternalServerError, ErrorKindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			esErr := &elastic.Error{Status: tc.status}
			converted := convertError(esErr)

			var target *Error
			require.ErrorAs(t, converted, &target)
			assert.Equal(t, tc.kind, target.Kind)
			assert.Equal(t, tc.status, target.Status)
			assert.ErrorIs(t, converted, esErr)
		})
	}
}

func TestConvertError_GenericError(t *testing.T) {
	cause := errors.New("something broke")
	converted := convertError(cause)

	var target *Error
	require.ErrorAs(t, converted, &target)
	assert.Equal(t, ErrorKindInternal, target.Kind)
	assert.Zero(t, target.Status)
	assert.ErrorIs(t, converted, cause)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(convertError(&elastic.Error{Status: http.StatusNotFound})))
	assert.True(t, IsNotFound(&elastic.Error{Status: http.StatusNotFound}))
	assert.False(t, IsNotFound(convertError(&elastic.Error{Status: http.StatusConflict})))
	assert.False(t, IsNotFound(errors.New("not an engine error")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(convertError(&elastic.Error{Status: http.StatusTooManyRequests})))
	assert.True(t, IsRetryable(convertError(&elastic.Error{Status: http.StatusServiceUnavailable})))
	assert.False(t, IsRetryable(convertError(&elastic.Error{Status: http.StatusBadRequest})))
	assert.False(t, IsRetryable(errors.New("no status at all")))
}

func TestHttpStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HttpStatus(convertError(&elastic.Error{Status: http.StatusConflict})))
	assert.Equal(t, http.StatusNotFound, HttpStatus(&elastic.Error{Status: http.StatusNotFound}))
	assert.Zero(t, HttpStatus(errors.New("plain")))
	assert.Zero(t, HttpStatus(nil))
}

func TestIsRetryableStatus(t *testing.T) {
	retryable := []int{
		http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
		http.StatusInsufficientStorage,
	}
	for _, status := range retryable {
		assert.True(t, IsRetryableStatus(status), "status %d", status)
	}
	assert.False(t, IsRetryableStatus(http.StatusNotFound))
	assert.False(t, IsRetryableStatus(http.StatusBadRequest))
	assert.False(t, IsRetryableStatus(0))
}

func TestErrorMessage(t *testing.T) {
	withStatus := &Error{Kind: ErrorKindNotFound, Status: http.StatusNotFound, Message: "no such index"}
	assert.Equal(t, "elasticsearch not-found error (status 404): no such index", withStatus.Error())

	withoutStatus := &Error{Kind: ErrorKindTimeout, Message: "deadline exceeded"}
	assert.Equal(t, "elasticsearch timeout error: deadline exceeded", withoutStatus.Error())
}
