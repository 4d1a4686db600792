// Package mongostore stores movies and genres in MongoDB collections.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Provider owns the process-wide MongoDB client.
type Provider struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client and verifies the server answers before returning.
func Connect(ctx context.Context, uri, database string) (*Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Provider{client: client, db: client.Database(database)}, nil
}

// Database is the shared handle every repository is built from.
func (p *Provider) Database() *mongo.Database {
	return p.db
}

func (p *Provider) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return p.client.Disconnect(ctx)
}
