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
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sully90/elasticutils/persistence/elasticsearch/client"
)

type adminSuite struct {
	suite.Suite
	controller   *gomock.Controller
	mockESClient *client.MockClient
}

func TestAdminSuite(t *testing.T) {
	s := new(adminSuite)
	suite.Run(t, s)
}

func (s *adminSuite) SetupTest() {
	s.controller = gomock.NewController(s.T())
	s.mockESClient = client.NewMockClient(s.controller)
}

func (s *adminSuite) TearDownTest() {
	s.controller.Finish()
}

func (s *adminSuite) TestIndexExists() {
	s.mockESClient.EXPECT().IndexExists(gomock.Any(), "movies").Return(true, nil)

	exists, err := IndexExists(context.Background(), s.mockESClient, IndexNameMovies)
	s.NoError(err)
	s.True(exists)
}

func (s *adminSuite) TestCreateAndDeleteIndex() {
	s.mockESClient.EXPECT().CreateIndex(gomock.Any(), "documents").Return(true, nil)
	s.mockESClient.EXPECT().DeleteIndex(gomock.Any(), "documents").Return(true, nil)

	acked, err := CreateIndex(context.Background(), s.mockESClient, IndexNameDocuments)
	s.NoError(err)
	s.True(acked)

	acked, err = DeleteIndex(context.Background(), s.mockESClient, IndexNameDocuments)
	s.NoError(err)
	s.True(acked)
}

func (s *adminSuite) TestEnsureIndex_AlreadyExists() {
	s.mockESClient.EXPECT().IndexExists(gomock.Any(), "movies").Return(true, nil)

	created, err := EnsureIndex(context.Background(), s.mockESClient, IndexNameMovies)
	s.NoError(err)
	s.False(created)
}

func (s *adminSuite) TestEnsureIndex_CreatesMissingIndex() {
	s.mockESClient.EXPECT().IndexExists(gomock.Any(), "movies").Return(false, nil)
	s.mockESClient.EXPECT().CreateIndex(gomock.Any(), "movies").Return(true, nil)

	created, err := EnsureIndex(context.Background(), s.mockESClient, IndexNameMovies)
	s.NoError(err)
	s.True(created)
}

func (s *adminSuite) TestEnsureIndex_ExistsCheckFails() {
	checkErr := errors.New("cluster unreachable")
	s.mockESClient.EXPECT().IndexExists(gomock.Any(), "movies").Return(false, checkErr)

	created, err := EnsureIndex(context.Background(), s.mockESClient, IndexNameMovies)
	s.ErrorIs(err, checkErr)
	s.False(created)
}
