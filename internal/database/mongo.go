package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection implements Collection on a mongo-driver collection.
type MongoCollection[T any] struct {
	col *mongo.Collection
}

func NewMongoCollection[T any](col *mongo.Collection) *MongoCollection[T] {
	return &MongoCollection[T]{col: col}
}

func (m *MongoCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var v T
	if err := m.col.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s find one: %w", m.col.Name(), err)
	}
	return &v, nil
}

func (m *MongoCollection[T]) Find(ctx context.Context, opts FindOptions) ([]T, error) {
	fo := options.Find().SetLimit(opts.limit())
	if opts.SortDesc != "" {
		fo.SetSort(bson.D{{Key: opts.SortDesc, Value: -1}})
	}
	cur, err := m.col.Find(ctx, opts.filter(), fo)
	if err != nil {
		return nil, fmt.Errorf("%s find: %w", m.col.Name(), err)
	}
	defer cur.Close(ctx)
	out := []T{}
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s decode: %w", m.col.Name(), err)
		}
		out = append(out, v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", m.col.Name(), err)
	}
	return out, nil
}

func (m *MongoCollection[T]) InsertOne(ctx context.Context, doc *T) error {
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s insert: %w", m.col.Name(), ErrDuplicate)
		}
		return fmt.Errorf("%s insert: %w", m.col.Name(), err)
	}
	return nil
}

func (m *MongoCollection[T]) EnsureUniqueIndex(ctx context.Context, field string) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("%s index %s: %w", m.col.Name(), field, err)
	}
	return nil
}
