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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"

	"github.com/sully90/elasticutils/common/log"
	"github.com/sully90/elasticutils/persistence/elasticsearch/client"
)

type (
	searchClientSuite struct {
		suite.Suite
		controller        *gomock.Controller
		mockESClient      *client.MockClient
		mockBulkProcessor *client.MockBulkProcessor
		searchClient      *SearchClient[testEntity]
	}

	testEntity struct {
		ID      int    `json:"id"`
		Title   string `json:"title,omitempty"`
		MongoID string `json:"mongoId,omitempty"`
	}

	// failingCodec fails to encode entities with a negative ID and to
	// decode payloads that are not valid JSON objects.
	failingCodec struct {
		JSONCodec[testEntity]
	}
)

var errEncode = errors.New("unencodable entity")

func (c failingCodec) Encode(entity testEntity) ([]byte, error) {
	if entity.ID < 0 {
		return nil, errEncode
	}
	return c.JSONCodec.Encode(entity)
}

func TestSearchClientSuite(t *testing.T) {
	s := new(searchClientSuite)
	suite.Run(t, s)
}

func (s *searchClientSuite) SetupTest() {
	s.controller = gomock.NewController(s.T())
	s.mockESClient = client.NewMockClient(s.controller)
	s.mockBulkProcessor = client.NewMockBulkProcessor(s.controller)

	s.mockESClient.EXPECT().
		RunBulkProcessor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *client.BulkProcessorParameters) (client.BulkProcessor, error) {
			s.NotEmpty(p.Name)
			s.Equal(1, p.NumOfWorkers)
			s.Equal(defaultBulkActions, p.BulkActions)
			s.Equal(defaultBulkSize, p.BulkSize)
			s.Equal(defaultFlushInterval, p.FlushInterval)
			s.NotNil(p.Backoff)
			return s.mockBulkProcessor, nil
		})

	searchClient, err := NewSearchClient[testEntity](
		context.Background(),
		s.mockESClient,
		IndexNameMovies,
		failingCodec{},
		nil,
		log.NewTestLogger(),
	)
	s.NoError(err)
	s.searchClient = searchClient
}

func (s *searchClientSuite) TearDownTest() {
	s.controller.Finish()
}

func (s *searchClientSuite) TestIndex_EnqueuesSerializedRequests() {
	var added []*client.BulkableRequest
	s.mockBulkProcessor.EXPECT().
		Add(gomock.Any()).
		Do(func(request *client.BulkableRequest) {
			added = append(added, request)
		}).
		Times(3)

	outcomes := s.searchClient.Index(
		testEntity{ID: 1},
		testEntity{ID: 2},
		testEntity{ID: 3},
	)

	s.Len(outcomes, 3)
	for _, outcome := range outcomes {
		s.True(outcome.Enqueued)
		s.NoError(outcome.Err)
	}

	s.Len(added, 3)
	for i, request := range added {
		s.Equal(client.BulkableRequestTypeIndex, request.RequestType)
		s.Equal("movies", request.Index)
		s.Empty(request.Pipeline)
		s.JSONEq(fmt.Sprintf(`{"id":%d}`, i+1), string(request.Doc))
	}
}

func (s *searchClientSuite) TestIndex_EncodeFailureIsReportedPerEntity() {
	s.mockBulkProcessor.EXPECT().Add(gomock.Any()).Times(2)

	outcomes := s.searchClient.Index(
		testEntity{ID: 1},
		testEntity{ID: -1},
		testEntity{ID: 3},
	)

	s.Len(outcomes, 3)
	s.True(outcomes[0].Enqueued)
	s.False(outcomes[1].Enqueued)
	s.ErrorIs(outcomes[1].Err, errEncode)
	s.True(outcomes[2].Enqueued)
}

func (s *searchClientSuite) TestIndexWithPipeline_AttachesPipeline() {
	s.mockBulkProcessor.EXPECT().
		Add(gomock.Any()).
		Do(func(request *client.BulkableRequest) {
			s.Equal("enrich-movies", request.Pipeline)
		})

	outcomes := s.searchClient.IndexWithPipeline("enrich-movies", testEntity{ID: 1})
	s.Len(outcomes, 1)
	s.True(outcomes[0].Enqueued)
}

func (s *searchClientSuite) TestSearch_DefaultsToDFSQueryThenFetch() {
	s.mockESClient.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *client.SearchParameters) (*elastic.SearchResult, error) {
			s.Equal("movies", p.Index)
			s.Equal(client.SearchTypeDFSQueryThenFetch, p.SearchType)
			s.Nil(p.PostFilter)
			return &elastic.SearchResult{Hits: &elastic.SearchHits{}}, nil
		})

	_, err := s.searchClient.MatchAll(context.Background())
	s.NoError(err)
}

func (s *searchClientSuite) TestSearch_AppliesOptions() {
	postFilter := TermField(FieldID, 1)
	s.mockESClient.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *client.SearchParameters) (*elastic.SearchResult, error) {
			s.Equal(client.SearchTypeQueryThenFetch, p.SearchType)
			s.Equal(postFilter, p.PostFilter)
			s.Equal(10, p.PageSize)
			return &elastic.SearchResult{Hits: &elastic.SearchHits{}}, nil
		})

	_, err := s.searchClient.Search(
		context.Background(),
		MatchAll(),
		WithSearchType(client.SearchTypeQueryThenFetch),
		WithPostFilter(postFilter),
		WithPageSize(10),
	)
	s.NoError(err)
}

func (s *searchClientSuite) TestSearchAndDeserialize_RoundTrip() {
	entities := []testEntity{
		{ID: 1, Title: "The Shawshank Redemption"},
		{ID: 2, Title: "The Godfather"},
		{ID: 3, Title: "The Dark Knight"},
	}
	hits := make([]*elastic.SearchHit, len(entities))
	for i, entity := range entities {
		source, err := json.Marshal(entity)
		s.NoError(err)
		hits[i] = &elastic.SearchHit{Id: entity.Title, Source: source}
	}

	s.mockESClient.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(&elastic.SearchResult{Hits: &elastic.SearchHits{Hits: hits}}, nil)

	decoded, err := s.searchClient.MatchAllAndDeserialize(context.Background())
	s.NoError(err)
	s.Equal(entities, decoded)
}

func (s *searchClientSuite) TestDeserializeHits_PartialFailureIsSurfaced() {
	hits := []*elastic.SearchHit{
		{Id: "1", Source: json.RawMessage(`{"id":1}`)},
		{Id: "2", Source: json.RawMessage(`not json`)},
		{Id: "3", Source: json.RawMessage(`{"id":3}`)},
	}

	decoded, err := s.searchClient.DeserializeHits(&elastic.SearchHits{Hits: hits})
	s.Error(err)
	s.Len(multierr.Errors(err), 1)
	s.Contains(err.Error(), "decode hit 2")
	s.Equal([]testEntity{{ID: 1}, {ID: 3}}, decoded)
}

func (s *searchClientSuite) TestDeserializeHits_NilHits() {
	decoded, err := s.searchClient.DeserializeHits(nil)
	s.NoError(err)
	s.Nil(decoded)
}

func (s *searchClientSuite) TestDeleteByID() {
	s.mockESClient.EXPECT().
		Delete(gomock.Any(), "movies", "test-doc-id").
		Return("test-doc-id", nil)

	id, err := s.searchClient.DeleteByID(context.Background(), "test-doc-id")
	s.NoError(err)
	s.Equal("test-doc-id", id)
}

func (s *searchClientSuite) TestDeleteByObjectID_BuildsCrossReferenceQuery() {
	objectID := primitive.NewObjectID()

	s.mockESClient.EXPECT().
		DeleteByQuery(gomock.Any(), "movies", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query elastic.Query) (int64, error) {
			gotSource, err := query.Source()
			s.NoError(err)
			wantSource, err := MatchField(FieldMongoID, objectID.Hex()).Source()
			s.NoError(err)
			s.Equal(wantSource, gotSource)
			return 1, nil
		})

	deleted, err := s.searchClient.DeleteByObjectID(context.Background(), objectID)
	s.NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *searchClientSuite) TestDeleteAll_DeletesEverything() {
	s.mockESClient.EXPECT().
		DeleteByQuery(gomock.Any(), "movies", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query elastic.Query) (int64, error) {
			gotSource, err := query.Source()
			s.NoError(err)
			wantSource, err := MatchAll().Source()
			s.NoError(err)
			s.Equal(wantSource, gotSource)
			return 3, nil
		})

	deleted, err := s.searchClient.DeleteAll(context.Background())
	s.NoError(err)
	s.Equal(int64(3), deleted)
}

func (s *searchClientSuite) TestFlush() {
	s.mockBulkProcessor.EXPECT().Flush().Return(nil)
	s.NoError(s.searchClient.Flush())
}

func (s *searchClientSuite) TestAwaitClose_Drained() {
	s.mockBulkProcessor.EXPECT().AwaitClose(time.Minute).Return(true, nil)

	closed, err := s.searchClient.AwaitClose(time.Minute)
	s.NoError(err)
	s.True(closed)
}

func (s *searchClientSuite) TestAwaitClose_Timeout() {
	s.mockBulkProcessor.EXPECT().AwaitClose(time.Millisecond).Return(false, nil)

	closed, err := s.searchClient.AwaitClose(time.Millisecond)
	s.NoError(err)
	s.False(closed)
}

func (s *searchClientSuite) TestClose() {
	s.mockBulkProcessor.EXPECT().Stop().Return(nil)
	s.NoError(s.searchClient.Close())
}
