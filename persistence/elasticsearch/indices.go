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

type (
	// IndexName identifies a known index. Using the enumerated constants
	// instead of free-form strings keeps index names typo-proof.
	IndexName string

	// Field identifies a known document field used in query helpers.
	Field string
)

const (
	IndexNameMovies    IndexName = "movies"
	IndexNameDocuments IndexName = "documents"
)

const (
	// FieldMongoID is the cross-reference key: the originating MongoDB
	// document id, stored as a field of the indexed document.
	FieldMongoID Field = "mongoId"
	FieldID      Field = "id"
)

var knownIndexNames = map[IndexName]struct{}{
	IndexNameMovies:    {},
	IndexNameDocuments: {},
}

func (n IndexName) String() string {
	return string(n)
}

// Known reports whether n is one of the enumerated index names.
func (n IndexName) Known() bool {
	_, ok := knownIndexNames[n]
	return ok
}

// NewRawIndexName wraps a free-form index name.
//
// Deprecated: use the enumerated IndexName constants; raw strings are kept
// only for backward compatibility and will be removed.
func NewRawIndexName(name string) IndexName {
	return IndexName(name)
}

func (f Field) String() string {
	return string(f)
}
