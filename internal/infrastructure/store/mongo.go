// internal/infrastructure/store/mongo.go
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database. Document ids are
// uuid strings assigned at insert time so they stay interchangeable with
// the in-memory driver.
type Mongo struct {
	client    *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
}

// NewMongo connects to MongoDB and returns a Mongo store.
func NewMongo(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Store.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("✅ MongoDB connection established successfully")

	return &Mongo{
		client:    client,
		db:        client.Database(cfg.Store.MongoDatabase),
		opTimeout: cfg.Store.OpTimeout,
	}, nil
}

// opContext bounds a single store operation by the configured timeout.
func (m *Mongo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.opTimeout)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Health checks the MongoDB connection health
func (m *Mongo) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Get decodes the document with the given id into out.
func (m *Mongo) Get(ctx context.Context, collection, id string, out any) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get document from %s: %w", collection, err)
	}
	return nil
}

// Query decodes all documents where field equals value into out.
func (m *Mongo) Query(ctx context.Context, collection, field string, value any, out any) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s query results: %w", collection, err)
	}
	return nil
}

// List decodes every document in a collection into out.
func (m *Mongo) List(ctx context.Context, collection string, out any) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

// Insert stores a new document and returns its assigned id.
func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document for %s: %w", collection, err)
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("failed to decode document for %s: %w", collection, err)
	}

	id, _ := fields["_id"].(string)
	if id == "" {
		id = uuid.NewString()
		fields["_id"] = id
	}

	if _, err := m.db.Collection(collection).InsertOne(ctx, fields); err != nil {
		return "", fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}
	return id, nil
}

// Update overwrites the given fields on an existing document.
func (m *Mongo) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	result, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return fmt.Errorf("failed to update document in %s: %w", collection, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document. Deleting an absent document is not an error.
func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	if _, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete document from %s: %w", collection, err)
	}
	return nil
}
