// Package store is the document-store access layer. The application talks to
// collections through the Collection interface; the production implementation
// is MongoDB, and an in-memory implementation backs the tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names.
const (
	Users        = "users"
	FoodLogs     = "food_logs"
	ActivityLogs = "activity_logs"
	Goals        = "goals"
	Trainers     = "trainers"
	Bookings     = "bookings"
)

// ErrNoDocuments is returned by FindOne when nothing matches the filter.
var ErrNoDocuments = errors.New("store: no documents in result")

// FindOptions controls sorting and the result cap for Find.
type FindOptions struct {
	SortField string
	SortDesc  bool
	Limit     int64
}

// Collection exposes the per-collection operations the application uses.
// UpsertOne replaces the document matching the filter, or inserts it if no
// match exists, atomically — callers must never implement upsert as a
// separate read followed by a write.
type Collection interface {
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (string, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error)
	UpsertOne(ctx context.Context, filter bson.M, doc interface{}) error
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
}

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
