package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared with the registration frontend.
const (
	EventsCollection = "events"
	TeamsCollection  = "teams"
)

// MongoOptions tunes the document store client.
type MongoOptions struct {
	ConnectTimeout time.Duration
	EnsureIndexes  bool
}

// ConnectMongo dials the document store, verifies it with a ping and returns the database handle.
func ConnectMongo(ctx context.Context, uri, dbName string, opts *MongoOptions) (*mongo.Database, error) {
	if opts == nil {
		opts = &MongoOptions{EnsureIndexes: true}
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(opts.ConnectTimeout).
		SetServerSelectionTimeout(opts.ConnectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	if opts.EnsureIndexes {
		if err := EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}
	return db, nil
}

// EnsureMongoIndexes creates the indexes the dashboard queries rely on. It is idempotent.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(EventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create event indexes: %w", err)
	}

	if _, err := db.Collection(TeamsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "event", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create team indexes: %w", err)
	}
	return nil
}
