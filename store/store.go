// Package store is the document-store boundary. Every entity is a flat
// document keyed by an application-assigned "id" field; the handlers only
// need equality filters, $set updates and simple sorted listings, so the
// Collection interface covers exactly that subset.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocuments is returned by FindOne when nothing matched.
var ErrNoDocuments = mongo.ErrNoDocuments

// FindOptions narrows a Find call.
type FindOptions struct {
	Sort  bson.D
	Limit int64
}

// Collection is the subset of document-collection operations the handlers use.
type Collection interface {
	FindOne(ctx context.Context, filter bson.M, out any) error
	Find(ctx context.Context, filter bson.M, out any, opts *FindOptions) error
	InsertOne(ctx context.Context, doc any) error
	UpdateOne(ctx context.Context, filter, update bson.M) (matched int64, err error)
	UpsertOne(ctx context.Context, filter, update bson.M) error
	DeleteOne(ctx context.Context, filter bson.M) (deleted int64, err error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]string, error)
}

// Store hands out named collections.
type Store interface {
	Collection(name string) Collection
}
