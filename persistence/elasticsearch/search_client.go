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
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olivere/elastic/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"

	"github.com/sully90/elasticutils/common/log"
	"github.com/sully90/elasticutils/common/log/tag"
	"github.com/sully90/elasticutils/persistence/elasticsearch/client"
)

type (
	// Codec translates entities to and from their stored JSON form. It is
	// supplied at construction, so the search client never relies on
	// reflection-based mapping of its own.
	Codec[T any] interface {
		Encode(entity T) ([]byte, error)
		Decode(data []byte) (T, error)
	}

	// JSONCodec is the default Codec, backed by encoding/json.
	JSONCodec[T any] struct{}

	// IndexOutcome reports the per-entity result of an Index call. Err is
	// set when the entity could not be encoded; such entities are skipped,
	// the rest of the batch still goes out.
	IndexOutcome struct {
		Enqueued bool
		Err      error
	}

	// ProcessorConfig contains all configs for the bulk processor backing
	// a SearchClient. The values are forwarded to the client library; they
	// are not interpreted here.
	ProcessorConfig struct {
		Name          string
		NumOfWorkers  int
		BulkActions   int
		BulkSize      int
		FlushInterval time.Duration
	}

	// SearchClient reads and writes documents of type T in a single index.
	// Writes go through an asynchronous batching bulk processor; searches,
	// deletes and admin calls are synchronous.
	SearchClient[T any] struct {
		esClient      client.Client
		index         IndexName
		codec         Codec[T]
		bulkProcessor client.BulkProcessor
		logger        log.Logger

		// serializes shutdown paths
		closeMutex sync.Mutex
	}

	searchOptions struct {
		searchType client.SearchType
		postFilter elastic.Query
		pageSize   int
	}

	// SearchOption customizes a single search call.
	SearchOption func(*searchOptions)
)

const (
	// retry configs for the bulk processor
	bulkProcessorInitialRetryInterval = 200 * time.Millisecond
	bulkProcessorMaxRetryInterval     = 20 * time.Second

	defaultBulkActions   = 1000
	defaultBulkSize      = 2 << 20 // 2MB
	defaultFlushInterval = time.Second
)

func (JSONCodec[T]) Encode(entity T) ([]byte, error) {
	return json.Marshal(entity)
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var entity T
	err := json.Unmarshal(data, &entity)
	return entity, err
}

// DefaultProcessorConfig returns a ProcessorConfig with a generated name and
// conservative batching thresholds.
func DefaultProcessorConfig() *ProcessorConfig {
	return &ProcessorConfig{
		Name:          "bulk-processor-" + uuid.NewString(),
		NumOfWorkers:  1,
		BulkActions:   defaultBulkActions,
		BulkSize:      defaultBulkSize,
		FlushInterval: defaultFlushInterval,
	}
}

// NewSearchClient creates a SearchClient bound to index, starting a bulk
// processor configured from cfg. codec may be nil, in which case JSONCodec
// is used. The processor keeps running until Close or AwaitClose.
func NewSearchClient[T any](
	ctx context.Context,
	esClient client.Client,
	index IndexName,
	codec Codec[T],
	cfg *ProcessorConfig,
	logger log.Logger,
) (*SearchClient[T], error) {
	if cfg == nil {
		cfg = DefaultProcessorConfig()
	}
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	logger = log.With(logger, tag.ESIndex(index.String()))

	bulkProcessor, err := esClient.RunBulkProcessor(ctx, &client.BulkProcessorParameters{
		Name:          cfg.Name,
		NumOfWorkers:  cfg.NumOfWorkers,
		BulkActions:   cfg.BulkActions,
		BulkSize:      cfg.BulkSize,
		FlushInterval: cfg.FlushInterval,
		Backoff:       elastic.NewExponentialBackoff(bulkProcessorInitialRetryInterval, bulkProcessorMaxRetryInterval),
	})
	if err != nil {
		return nil, err
	}

	return &SearchClient[T]{
		esClient:      esClient,
		index:         index,
		codec:         codec,
		bulkProcessor: bulkProcessor,
		logger:        logger,
	}, nil
}

// Index encodes each entity and enqueues it for asynchronous batched
// submission. The returned slice has one outcome per input entity, in input
// order; entities that fail to encode are skipped without aborting the rest.
func (c *SearchClient[T]) Index(entities ...T) []IndexOutcome {
	return c.indexAll("", entities)
}

// IndexWithPipeline is Index with a server-side ingest pipeline attached to
// every request.
func (c *SearchClient[T]) IndexWithPipeline(pipeline string, entities ...T) []IndexOutcome {
	return c.indexAll(pipeline, entities)
}

func (c *SearchClient[T]) indexAll(pipeline string, entities []T) []IndexOutcome {
	outcomes := make([]IndexOutcome, len(entities))
	for i, entity := range entities {
		payload, err := c.codec.Encode(entity)
		if err != nil {
			outcomes[i] = IndexOutcome{Err: fmt.Errorf("encode entity: %w", err)}
			c.logger.Warn("Unable to encode entity for indexing.", tag.Error(err))
			continue
		}
		c.bulkProcessor.Add(&client.BulkableRequest{
			RequestType: client.BulkableRequestTypeIndex,
			Index:       c.index.String(),
			Pipeline:    pipeline,
			Doc:         payload,
		})
		outcomes[i] = IndexOutcome{Enqueued: true}
	}
	return outcomes
}

// Flush forces buffered requests out. It does not wait for acknowledgment.
func (c *SearchClient[T]) Flush() error {
	return c.bulkProcessor.Flush()
}

// AwaitClose drains the bulk processor and stops it, waiting at most
// timeout. Returns true iff the drain finished within the bound. Calls are
// serialized.
func (c *SearchClient[T]) AwaitClose(timeout time.Duration) (bool, error) {
	c.closeMutex.Lock()
	defer c.closeMutex.Unlock()
	return c.bulkProcessor.AwaitClose(timeout)
}

// Close stops the bulk processor. Requests not yet committed are subject to
// whatever the processor guarantees on close.
func (c *SearchClient[T]) Close() error {
	c.closeMutex.Lock()
	defer c.closeMutex.Unlock()
	return c.bulkProcessor.Stop()
}

// WithSearchType selects the query execution strategy.
func WithSearchType(searchType client.SearchType) SearchOption {
	return func(o *searchOptions) {
		o.searchType = searchType
	}
}

// WithPostFilter applies a filter after query execution.
func WithPostFilter(filter elastic.Query) SearchOption {
	return func(o *searchOptions) {
		o.postFilter = filter
	}
}

// WithPageSize limits the number of returned hits.
func WithPageSize(pageSize int) SearchOption {
	return func(o *searchOptions) {
		o.pageSize = pageSize
	}
}

// Search runs query against the bound index and returns the raw result.
func (c *SearchClient[T]) Search(ctx context.Context, query elastic.Query, opts ...SearchOption) (*elastic.SearchResult, error) {
	options := &searchOptions{
		searchType: client.SearchTypeDFSQueryThenFetch,
	}
	for _, opt := range opts {
		opt(options)
	}

	return c.esClient.Search(ctx, &client.SearchParameters{
		Index:      c.index.String(),
		Query:      query,
		PostFilter: options.postFilter,
		SearchType: options.searchType,
		PageSize:   options.pageSize,
	})
}

// MatchAll returns every document of the bound index.
func (c *SearchClient[T]) MatchAll(ctx context.Context, opts ...SearchOption) (*elastic.SearchResult, error) {
	return c.Search(ctx, MatchAll(), opts...)
}

// SearchAndDeserialize runs query and decodes each hit into a T. Hits that
// fail to decode are skipped; their errors are aggregated into the returned
// error, so callers can distinguish an empty result from a lossy one.
func (c *SearchClient[T]) SearchAndDeserialize(ctx context.Context, query elastic.Query, opts ...SearchOption) ([]T, error) {
	result, err := c.Search(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	return c.DeserializeHits(result.Hits)
}

// MatchAllAndDeserialize decodes every document of the bound index.
func (c *SearchClient[T]) MatchAllAndDeserialize(ctx context.Context, opts ...SearchOption) ([]T, error) {
	return c.SearchAndDeserialize(ctx, MatchAll(), opts...)
}

// DeserializeHits decodes raw hits into values of T, preserving hit order
// for the successes. Decode failures are logged and aggregated into the
// returned error.
func (c *SearchClient[T]) DeserializeHits(hits *elastic.SearchHits) ([]T, error) {
	if hits == nil {
		return nil, nil
	}

	var decodeErrs error
	entities := make([]T, 0, len(hits.Hits))
	for _, hit := range hits.Hits {
		entity, err := c.codec.Decode(hit.Source)
		if err != nil {
			decodeErrs = multierr.Append(decodeErrs, fmt.Errorf("decode hit %s: %w", hit.Id, err))
			c.logger.Warn("Unable to decode search hit.", tag.ESDocID(hit.Id), tag.Error(err))
			continue
		}
		entities = append(entities, entity)
	}
	return entities, decodeErrs
}

// DeleteByID deletes a single document by its engine-assigned id and
// returns the deleted id.
func (c *SearchClient[T]) DeleteByID(ctx context.Context, id string) (string, error) {
	return c.esClient.Delete(ctx, c.index.String(), id)
}

// DeleteByObjectID deletes the documents whose cross-reference field equals
// the hex form of the given MongoDB document id. This lets documents be
// removed from the index by their canonical id in the document database.
// A match query is used so the lookup works regardless of how the field is
// analyzed.
func (c *SearchClient[T]) DeleteByObjectID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return c.DeleteByQuery(ctx, MatchField(FieldMongoID, id.Hex()))
}

// DeleteByQuery deletes all documents matching query and returns the number
// of deleted documents.
func (c *SearchClient[T]) DeleteByQuery(ctx context.Context, query elastic.Query) (int64, error) {
	return c.esClient.DeleteByQuery(ctx, c.index.String(), query)
}

// DeleteAll deletes every document of the bound index and returns the count.
func (c *SearchClient[T]) DeleteAll(ctx context.Context) (int64, error) {
	return c.DeleteByQuery(ctx, MatchAll())
}
