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

//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination interface_mock.go

package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/olivere/elastic/v7"
)

type (
	// Client is a thin interface over the Elasticsearch client library.
	// All calls are synchronous and blocking except RunBulkProcessor,
	// which returns an asynchronous batching submitter.
	Client interface {
		Search(ctx context.Context, p *SearchParameters) (*elastic.SearchResult, error)
		Count(ctx context.Context, index string, query elastic.Query) (int64, error)
		RunBulkProcessor(ctx context.Context, p *BulkProcessorParameters) (BulkProcessor, error)
		Bulk() BulkService

		Delete(ctx context.Context, index string, docID string) (string, error)
		DeleteByQuery(ctx context.Context, index string, query elastic.Query) (int64, error)

		CreateIndex(ctx context.Context, index string) (bool, error)
		IndexExists(ctx context.Context, index string) (bool, error)
		DeleteIndex(ctx context.Context, index string) (bool, error)
		PutMapping(ctx context.Context, index string, body map[string]interface{}) (bool, error)
		WaitForYellowStatus(ctx context.Context, index string) (string, error)

		IsNotFoundError(err error) bool
	}

	// SearchParameters holds all required and optional parameters for executing a search.
	SearchParameters struct {
		Index      string
		Query      elastic.Query
		PostFilter elastic.Query
		SearchType SearchType
		PageSize   int
		Sorter     []elastic.Sorter
	}

	// SearchType selects the query execution strategy of the engine.
	SearchType int

	// BulkProcessor is an interface over the client library bulk processor.
	// Add enqueues a request for asynchronous batched submission. Flush
	// forces buffered requests out without waiting for acknowledgment.
	// AwaitClose drains and stops the processor, waiting at most timeout;
	// it returns false if the drain did not finish within the bound.
	BulkProcessor interface {
		Add(request *BulkableRequest)
		Flush() error
		AwaitClose(timeout time.Duration) (bool, error)
		Stop() error
	}

	// BulkService is an interface over the synchronous bulk API.
	BulkService interface {
		Do(ctx context.Context) error
		NumberOfActions() int
		Add(request *BulkableRequest)
	}

	// BulkableRequestType is the type of a bulkable request.
	BulkableRequestType int

	// BulkableRequest is a single request that can be sent via the bulk API.
	// Doc carries the pre-serialized JSON source for index requests. ID is
	// optional for index requests (the engine assigns one when empty).
	BulkableRequest struct {
		RequestType BulkableRequestType
		Index       string
		ID          string
		Pipeline    string
		Doc         json.RawMessage
	}

	// BulkProcessorParameters holds all required and optional parameters for
	// configuring a bulk processor.
	BulkProcessorParameters struct {
		Name          string
		NumOfWorkers  int
		BulkActions   int
		BulkSize      int
		FlushInterval time.Duration
		Backoff       elastic.Backoff
		BeforeFunc    elastic.BulkBeforeFunc
		AfterFunc     elastic.BulkAfterFunc
	}
)

const (
	// SearchTypeDFSQueryThenFetch computes distributed term frequencies
	// before fetching. More accurate scoring, one extra round-trip.
	SearchTypeDFSQueryThenFetch SearchType = iota
	// SearchTypeQueryThenFetch is the engine default.
	SearchTypeQueryThenFetch
)

const (
	BulkableRequestTypeIndex BulkableRequestType = iota
	BulkableRequestTypeDelete
)

func (t SearchType) String() string {
	switch t {
	case SearchTypeQueryThenFetch:
		return "query_then_fetch"
	default:
		return "dfs_query_then_fetch"
	}
}
