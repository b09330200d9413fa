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
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/blang/semver/v4"
	"github.com/olivere/elastic/v7"

	"github.com/sully90/elasticutils/common/log"
)

type (
	// clientImpl implements Client
	clientImpl struct {
		esClient *elastic.Client
		url      url.URL
		docType  string

		initDocTypeRequired sync.Once
		docTypeRequired     bool
	}
)

const minimumCloseIdleConnectionsInterval = 15 * time.Second

// Mapping types are deprecated in 7.x and removed in 8; they are only
// transmitted to older servers.
var docTypeRequiredIn = semver.MustParseRange("<7.0.0")

var _ Client = (*clientImpl)(nil)

func newClient(cfg *Config, httpClient *http.Client, logger log.Logger) (*clientImpl, error) {
	clientURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, convertError(err)
	}

	options := []elastic.ClientOptionFunc{
		elastic.SetURL(clientURL.String()),
		elastic.SetBasicAuth(cfg.Username, cfg.Password),
		// Disable healthcheck to prevent blocking client creation if Elasticsearch is down.
		elastic.SetHealthcheck(false),
		elastic.SetSniff(cfg.EnableSniff),
		elastic.SetRetrier(elastic.NewBackoffRetrier(elastic.NewExponentialBackoff(128*time.Millisecond, 513*time.Millisecond))),
		// Critical to ensure decode of int64 won't lose precision.
		elastic.SetDecoder(&elastic.NumberDecoder{}),
	}

	options = append(options, getLoggerOptions(cfg.LogLevel, logger)...)

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if cfg.CloseIdleConnectionsInterval != time.Duration(0) {
		if cfg.CloseIdleConnectionsInterval < minimumCloseIdleConnectionsInterval {
			cfg.CloseIdleConnectionsInterval = minimumCloseIdleConnectionsInterval
		}
		go func(interval time.Duration, httpClient *http.Client) {
			closeTimer := time.NewTimer(interval)
			defer closeTimer.Stop()
			for {
				<-closeTimer.C
				closeTimer.Reset(interval)
				httpClient.CloseIdleConnections()
			}
		}(cfg.CloseIdleConnectionsInterval, httpClient)
	}

	options = append(options, elastic.SetHttpClient(httpClient))

	esClient, err := elastic.NewClient(options...)
	if err != nil {
		return nil, convertError(err)
	}

	// Enable healthcheck (if configured) after client is successfully created.
	if cfg.EnableHealthcheck {
		esClient.Stop()
		err = elastic.SetHealthcheck(true)(esClient)
		if err != nil {
			return nil, convertError(err)
		}
		esClient.Start()
	}

	return &clientImpl{
		esClient: esClient,
		url:      *clientURL,
		docType:  cfg.DocumentType,
	}, nil
}

func (c *clientImpl) Search(ctx context.Context, p *SearchParameters) (*elastic.SearchResult, error) {
	searchService := c.esClient.Search().
		Index(p.Index).
		Query(p.Query).
		SearchType(p.SearchType.String())

	if p.PostFilter != nil {
		searchService.PostFilter(p.PostFilter)
	}
	if p.PageSize != 0 {
		searchService.Size(p.PageSize)
	}
	if len(p.Sorter) != 0 {
		searchService.SortBy(p.Sorter...)
	}
	if docType := c.mappingType(ctx); docType != "" {
		//lint:ignore SA1019 mapping types must still be sent to pre-7.0 servers.
		searchService.Type(docType)
	}

	result, err := searchService.Do(ctx)
	if err != nil {
		return nil, convertError(err)
	}
	return result, nil
}

func (c *clientImpl) Count(ctx context.Context, index string, query elastic.Query) (int64, error) {
	count, err := c.esClient.Count(index).Query(query).Do(ctx)
	if err != nil {
		return 0, convertError(err)
	}
	return count, nil
}

func (c *clientImpl) RunBulkProcessor(ctx context.Context, p *BulkProcessorParameters) (BulkProcessor, error) {
	esBulkProcessor, err := c.esClient.BulkProcessor().
		Name(p.Name).
		Workers(p.NumOfWorkers).
		BulkActions(p.BulkActions).
		BulkSize(p.BulkSize).
		FlushInterval(p.FlushInterval).
		Backoff(p.Backoff).
		Before(p.BeforeFunc).
		After(p.AfterFunc).
		Do(ctx)
	if err != nil {
		return nil, convertError(err)
	}

	return newBulkProcessor(esBulkProcessor, c.mappingType(ctx)), nil
}

func (c *clientImpl) Bulk() BulkService {
	return newBulkService(c.esClient.Bulk(), c.mappingType(context.Background()))
}

func (c *clientImpl) Delete(ctx context.Context, index string, docID string) (string, error) {
	deleteService := c.esClient.Delete().
		Index(index).
		Id(docID)
	if docType := c.mappingType(ctx); docType != "" {
		//lint:ignore SA1019 mapping types must still be sent to pre-7.0 servers.
		deleteService.Type(docType)
	}

	resp, err := deleteService.Do(ctx)
	if err != nil {
		return "", convertError(err)
	}
	return resp.Id, nil
}

func (c *clientImpl) DeleteByQuery(ctx context.Context, index string, query elastic.Query) (int64, error) {
	resp, err := c.esClient.DeleteByQuery(index).
		Query(query).
		Do(ctx)
	if err != nil {
		return 0, convertError(err)
	}
	return resp.Deleted, nil
}

func (c *clientImpl) CreateIndex(ctx context.Context, index string) (bool, error) {
	resp, err := c.esClient.CreateIndex(index).Do(ctx)
	if err != nil {
		return false, convertError(err)
	}
	return resp.Acknowledged, nil
}

func (c *clientImpl) IndexExists(ctx context.Context, index string) (bool, error) {
	exists, err := c.esClient.IndexExists(index).Do(ctx)
	if err != nil {
		return false, convertError(err)
	}
	return exists, nil
}

func (c *clientImpl) DeleteIndex(ctx context.Context, index string) (bool, error) {
	resp, err := c.esClient.DeleteIndex(index).Do(ctx)
	if err != nil {
		return false, convertError(err)
	}
	return resp.Acknowledged, nil
}

func (c *clientImpl) PutMapping(ctx context.Context, index string, body map[string]interface{}) (bool, error) {
	resp, err := c.esClient.PutMapping().Index(index).BodyJson(body).Do(ctx)
	if err != nil {
		return false, convertError(err)
	}
	return resp.Acknowledged, nil
}

func (c *clientImpl) WaitForYellowStatus(ctx context.Context, index string) (string, error) {
	resp, err := c.esClient.ClusterHealth().Index(index).WaitForYellowStatus().Do(ctx)
	if err != nil {
		return "", convertError(err)
	}
	return resp.Status, nil
}

func (c *clientImpl) IsNotFoundError(err error) bool {
	return IsNotFound(err)
}

// mappingType returns the configured document type if the connected server
// still requires mapping types, empty string otherwise. The server version
// is probed once on first use; docTypeRequired is only read after the Once
// completes, so all callers observe the probed value.
func (c *clientImpl) mappingType(ctx context.Context) string {
	if c.docType == "" {
		return ""
	}
	c.initDocTypeRequired.Do(func() {
		c.docTypeRequired = c.queryDocTypeRequired(ctx)
	})
	if c.docTypeRequired {
		return c.docType
	}
	return ""
}

func (c *clientImpl) queryDocTypeRequired(ctx context.Context) bool {
	result, _, err := c.esClient.Ping(c.url.String()).Do(ctx)
	if err != nil || result == nil {
		return false
	}
	esVersion, err := semver.ParseTolerant(result.Version.Number)
	if err != nil {
		return false
	}
	return docTypeRequiredIn(esVersion)
}

func getLoggerOptions(logLevel string, logger log.Logger) []elastic.ClientOptionFunc {
	switch {
	case strings.EqualFold(logLevel, "trace"):
		return []elastic.ClientOptionFunc{
			elastic.SetErrorLog(newErrorLogger(logger)),
			elastic.SetInfoLog(newInfoLogger(logger)),
			elastic.SetTraceLog(newInfoLogger(logger)),
		}
	case strings.EqualFold(logLevel, "info"):
		return []elastic.ClientOptionFunc{
			elastic.SetErrorLog(newErrorLogger(logger)),
			elastic.SetInfoLog(newInfoLogger(logger)),
		}
	case strings.EqualFold(logLevel, "error"), logLevel == "": // Default is to log errors only.
		return []elastic.ClientOptionFunc{
			elastic.SetErrorLog(newErrorLogger(logger)),
		}
	default:
		return nil
	}
}
