package repository

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectAttempts = 3
	connectTimeout  = 8 * time.Second
	maxBackoff      = 5 * time.Second
)

// MongoClient lazily establishes and caches a single database handle for the
// process. The first caller performs the connect; concurrent cold-start
// callers block on the same attempt instead of racing their own. A handle
// that fails is dropped so the next call reconnects.
type MongoClient struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient builds a client without connecting. The composition root
// owns the lifecycle; nothing here is process-global.
func NewMongoClient(uri, dbName string) *MongoClient {
	return &MongoClient{uri: uri, dbName: dbName}
}

// Database returns the cached handle, connecting on first use with bounded
// retries and exponential backoff. Each successful connect is verified with
// a ping before being cached.
func (c *MongoClient) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, db, err := c.connect(ctx)
		if err == nil {
			c.client = client
			c.db = db
			log.Println("mongo: connection established")
			return db, nil
		}
		lastErr = err
		log.Printf("mongo: connection attempt %d/%d failed: %v", attempt, connectAttempts, err)

		if attempt < connectAttempts {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			if wait > maxBackoff {
				wait = maxBackoff
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("mongo: could not connect after %d attempts: %w", connectAttempts, lastErr)
}

func (c *MongoClient) connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.uri).
		SetServerSelectionTimeout(connectTimeout).
		SetMaxPoolSize(10).
		SetRetryWrites(true)

	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(c.dbName), nil
}

// Invalidate drops the cached handle so the next call reconnects. Called by
// the adapters when an operation fails on an established connection.
func (c *MongoClient) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		_ = c.client.Disconnect(context.Background())
	}
	c.client = nil
	c.db = nil
}

// Close releases the cached connection, if any.
func (c *MongoClient) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	return err
}
