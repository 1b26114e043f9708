package boardstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ironplane/ironplane/pkg/httputil"
)

// MongoConfig configures a MongoStore.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

func (c MongoConfig) withDefaults() MongoConfig {
	if c.Database == "" {
		c.Database = "ironplane"
	}
	if c.Collection == "" {
		c.Collection = "boards"
	}
	return c
}

// MongoStore is a Store backed by a MongoDB collection, for the service
// deployment where more than one instance shares the same board data.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to cfg.URI and returns a MongoStore over
// cfg.Database/cfg.Collection (defaulting to "ironplane"/"boards").
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	cfg = cfg.withDefaults()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("boardstore: connect: %w", err)
	}

	// Connect itself doesn't dial; Ping does, and the server is commonly
	// still starting up when this runs in a compose/k8s deployment.
	pingErr := httputil.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return httputil.Retryable(err)
		}
		return nil
	})
	if pingErr != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("boardstore: ping: %w", pingErr)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Create(ctx context.Context, rec *Record) error {
	now := time.Now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return fmt.Errorf("boardstore: insert: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("boardstore: find: %w", err)
	}
	return &rec, nil
}

func (s *MongoStore) Update(ctx context.Context, rec *Record) error {
	rec.UpdatedAt = time.Now()
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return fmt.Errorf("boardstore: replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("boardstore: delete: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("boardstore: find all: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*Record
	for cursor.Next(ctx) {
		var rec Record
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("boardstore: decode: %w", err)
		}
		records = append(records, &rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("boardstore: cursor: %w", err)
	}
	return records, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
