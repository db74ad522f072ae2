package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// MaxFindLimit caps every list query.
const MaxFindLimit int64 = 100

var (
	// ErrDuplicate is returned by InsertOne when a unique index rejects the document.
	ErrDuplicate = errors.New("duplicate key")
)

// Filter is an exact-match filter: every field must equal its value.
type Filter = bson.M

// Eq builds a single-field exact-match filter.
func Eq(field string, value any) Filter {
	return Filter{field: value}
}

// FindOptions controls Find. Limit <= 0 or above MaxFindLimit means MaxFindLimit.
type FindOptions struct {
	Filter   Filter
	SortDesc string
	Limit    int64
}

func (o FindOptions) limit() int64 {
	if o.Limit <= 0 || o.Limit > MaxFindLimit {
		return MaxFindLimit
	}
	return o.Limit
}

func (o FindOptions) filter() Filter {
	if o.Filter == nil {
		return Filter{}
	}
	return o.Filter
}

// Collection is a typed view over one document collection.
// FindOne returns (nil, nil) when nothing matches.
type Collection[T any] interface {
	FindOne(ctx context.Context, filter Filter) (*T, error)
	Find(ctx context.Context, opts FindOptions) ([]T, error)
	InsertOne(ctx context.Context, doc *T) error
	EnsureUniqueIndex(ctx context.Context, field string) error
}
