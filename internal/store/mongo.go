package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoSource struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewMongoSource aplica timeout a cada Find; zero desliga o limite.
func NewMongoSource(db *mongo.Database, timeout time.Duration) *MongoSource {
	return &MongoSource{db: db, timeout: timeout}
}

func (s *MongoSource) Find(ctx context.Context, collection string, filter Filter) ([]bson.Raw, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter.toBSON())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.Raw{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
