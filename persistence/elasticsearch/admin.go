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

package elasticsearch

import (
	"context"

	"github.com/sully90/elasticutils/persistence/elasticsearch/client"
)

// Administrative helpers. All calls are direct, synchronous and blocking;
// no retry or schema setup is layered on top. Callers are expected to check
// existence before creating, or use EnsureIndex.

// IndexExists reports whether the named index currently exists.
func IndexExists(ctx context.Context, esClient client.Client, index IndexName) (bool, error) {
	return esClient.IndexExists(ctx, index.String())
}

// CreateIndex issues an index-creation request and returns whether the
// engine acknowledged it.
func CreateIndex(ctx context.Context, esClient client.Client, index IndexName) (bool, error) {
	return esClient.CreateIndex(ctx, index.String())
}

// DeleteIndex deletes the named index and returns whether the engine
// acknowledged it.
func DeleteIndex(ctx context.Context, esClient client.Client, index IndexName) (bool, error) {
	return esClient.DeleteIndex(ctx, index.String())
}

// EnsureIndex creates the named index if it does not exist. Returns true if
// the index was created by this call.
func EnsureIndex(ctx context.Context, esClient client.Client, index IndexName) (bool, error) {
	exists, err := IndexExists(ctx, esClient, index)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	return CreateIndex(ctx, esClient, index)
}
