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

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type (
	// ConnectionHandle wraps one database handle of the document-database
	// driver. The handle can be swapped at runtime (e.g. for reconnect);
	// callers must not call Collection concurrently with SetDatabase.
	// Validation, retry and pooling are the driver's business, nothing is
	// added here.
	ConnectionHandle struct {
		db *mongo.Database
	}
)

// NewConnectionHandle wraps an existing database handle.
func NewConnectionHandle(db *mongo.Database) *ConnectionHandle {
	return &ConnectionHandle{
		db: db,
	}
}

// Connect dials uri, verifies the connection with a ping and returns a
// handle on the named database.
func Connect(ctx context.Context, uri string, dbName string) (*ConnectionHandle, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return NewConnectionHandle(mongoClient.Database(dbName)), nil
}

// Database returns the wrapped database handle.
func (h *ConnectionHandle) Database() *mongo.Database {
	return h.db
}

// SetDatabase replaces the wrapped database handle.
func (h *ConnectionHandle) SetDatabase(db *mongo.Database) {
	h.db = db
}

// Collection resolves a known collection name to a driver collection.
func (h *ConnectionHandle) Collection(name CollectionName) *mongo.Collection {
	return h.db.Collection(name.String())
}

// CollectionByName resolves a free-form collection name.
//
// Deprecated: use Collection with the enumerated CollectionName constants;
// raw strings are kept only for backward compatibility and will be removed.
func (h *ConnectionHandle) CollectionByName(name string) *mongo.Collection {
	return h.db.Collection(name)
}
