package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore is the production Store backed by a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo connects and pings the deployment. Callers must treat an
// error as fatal — there is no degraded mode.
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{col: s.db.Collection(name)}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoCollection struct {
	col *mongo.Collection
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	err := c.col.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	return err
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error {
	fo := options.Find()
	if opts.SortField != "" {
		dir := 1
		if opts.SortDesc {
			dir = -1
		}
		fo.SetSort(bson.D{{Key: opts.SortField, Value: dir}})
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	cur, err := c.col.Find(ctx, filter, fo)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	res, err := c.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) UpsertOne(ctx context.Context, filter bson.M, doc interface{}) error {
	_, err := c.col.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
