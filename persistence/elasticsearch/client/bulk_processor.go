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
	"sync"
	"time"

	"github.com/olivere/elastic/v7"
)

type (
	// bulkProcessorImpl is an agent of elastic.BulkProcessor.
	bulkProcessorImpl struct {
		esBulkProcessor *elastic.BulkProcessor
		docType         string
		closeMutex      sync.Mutex
	}
)

var _ BulkProcessor = (*bulkProcessorImpl)(nil)

func newBulkProcessor(esBulkProcessor *elastic.BulkProcessor, docType string) *bulkProcessorImpl {
	return &bulkProcessorImpl{
		esBulkProcessor: esBulkProcessor,
		docType:         docType,
	}
}

func (p *bulkProcessorImpl) Add(request *BulkableRequest) {
	p.esBulkProcessor.Add(convertBulkableRequest(request, p.docType))
}

func (p *bulkProcessorImpl) Flush() error {
	return convertError(p.esBulkProcessor.Flush())
}

// AwaitClose drains the processor and stops it, waiting at most timeout.
// Calls are serialized to prevent concurrent shutdown races. On timeout the
// drain keeps running in the background; only the wait is bounded.
func (p *bulkProcessorImpl) AwaitClose(timeout time.Duration) (bool, error) {
	p.closeMutex.Lock()
	defer p.closeMutex.Unlock()

	closed := make(chan error, 1)
	go func() {
		closed <- p.esBulkProcessor.Close()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-closed:
		if err != nil {
			return false, convertError(err)
		}
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

func (p *bulkProcessorImpl) Stop() error {
	p.closeMutex.Lock()
	defer p.closeMutex.Unlock()
	return convertError(p.esBulkProcessor.Stop())
}

func convertBulkableRequest(request *BulkableRequest, docType string) elastic.BulkableRequest {
	switch request.RequestType {
	case BulkableRequestTypeDelete:
		bulkDeleteRequest := elastic.NewBulkDeleteRequest().
			Index(request.Index).
			Id(request.ID)
		if docType != "" {
			bulkDeleteRequest.Type(docType)
		}
		return bulkDeleteRequest
	default:
		bulkIndexRequest := elastic.NewBulkIndexRequest().
			Index(request.Index).
			Doc(request.Doc)
		if request.ID != "" {
			bulkIndexRequest.Id(request.ID)
		}
		if request.Pipeline != "" {
			bulkIndexRequest.Pipeline(request.Pipeline)
		}
		if docType != "" {
			bulkIndexRequest.Type(docType)
		}
		return bulkIndexRequest
	}
}
