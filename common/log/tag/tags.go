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

package tag

import "time"

// All logging tags are defined in this file.
// To avoid conflicts, it is recommended to keep tags sorted and grouped by
// the part of the library they describe.

// Error returns tag for Error.
func Error(err error) ZapTag {
	return NewErrorTag(err)
}

// Component returns tag for Component.
func Component(component string) ZapTag {
	return NewStringTag("component", component)
}

// Key returns tag for Key.
func Key(k string) ZapTag {
	return NewStringTag("key", k)
}

// Value returns tag for Value.
func Value(v interface{}) ZapTag {
	return NewAnyTag("value", v)
}

// Timeout returns tag for Timeout.
func Timeout(timeout time.Duration) ZapTag {
	return NewDurationTag("timeout", timeout)
}

// Counter returns tag for Counter.
func Counter(n int) ZapTag {
	return NewInt("counter", n)
}

// ESIndex returns tag for ESIndex.
func ESIndex(index string) ZapTag {
	return NewStringTag("es-index", index)
}

// ESDocType returns tag for ESDocType.
func ESDocType(docType string) ZapTag {
	return NewStringTag("es-doc-type", docType)
}

// ESDocID returns tag for ESDocID.
func ESDocID(id string) ZapTag {
	return NewStringTag("es-doc-id", id)
}

// ESPipeline returns tag for ESPipeline.
func ESPipeline(pipeline string) ZapTag {
	return NewStringTag("es-pipeline", pipeline)
}

// ESRequest returns tag for ESRequest.
func ESRequest(request string) ZapTag {
	return NewStringTag("es-request", request)
}

// ESResponseStatus returns tag for ESResponseStatus.
func ESResponseStatus(status int) ZapTag {
	return NewInt("es-response-status", status)
}

// ESServerVersion returns tag for ESServerVersion.
func ESServerVersion(version string) ZapTag {
	return NewStringTag("es-server-version", version)
}

// Collection returns tag for Collection.
func Collection(collection string) ZapTag {
	return NewStringTag("mongo-collection", collection)
}

// RequestCount returns tag for RequestCount.
func RequestCount(count int) ZapTag {
	return NewInt("request-count", count)
}

// IsRetryable returns tag for IsRetryable.
func IsRetryable(isRetryable bool) ZapTag {
	return NewBoolTag("is-retryable", isRetryable)
}
