package database

import (
	"cmp"
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MemoryCollection is an in-memory Collection used by tests and local runs.
// Documents are kept as BSON so decoding follows the same path as Mongo.
type MemoryCollection[T any] struct {
	name   string
	mu     sync.RWMutex
	docs   []bson.Raw
	unique []string
}

func NewMemoryCollection[T any](name string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name}
}

func (m *MemoryCollection[T]) FindOne(_ context.Context, filter Filter) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		ok, err := matches(d, filter)
		if err != nil {
			return nil, fmt.Errorf("%s find one: %w", m.name, err)
		}
		if !ok {
			continue
		}
		var v T
		if err := bson.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("%s decode: %w", m.name, err)
		}
		return &v, nil
	}
	return nil, nil
}

func (m *MemoryCollection[T]) Find(_ context.Context, opts FindOptions) ([]T, error) {
	m.mu.RLock()
	hits := make([]bson.Raw, 0, len(m.docs))
	for _, d := range m.docs {
		ok, err := matches(d, opts.filter())
		if err != nil {
			m.mu.RUnlock()
			return nil, fmt.Errorf("%s find: %w", m.name, err)
		}
		if ok {
			hits = append(hits, d)
		}
	}
	m.mu.RUnlock()

	if opts.SortDesc != "" {
		field := opts.SortDesc
		sort.SliceStable(hits, func(i, j int) bool {
			return compareRaw(hits[i].Lookup(field), hits[j].Lookup(field)) > 0
		})
	}
	if n := opts.limit(); int64(len(hits)) > n {
		hits = hits[:n]
	}
	out := make([]T, 0, len(hits))
	for _, d := range hits {
		var v T
		if err := bson.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("%s decode: %w", m.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *MemoryCollection[T]) InsertOne(ctx context.Context, doc *T) error {
	return m.InsertDocument(ctx, doc)
}

// InsertDocument stores any BSON-marshalable value, bypassing the type
// parameter. Tests use it to plant documents the application never writes.
func (m *MemoryCollection[T]) InsertDocument(_ context.Context, doc any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s insert: %w", m.name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, field := range m.unique {
		v, err := bson.Raw(raw).LookupErr(field)
		if err != nil {
			continue
		}
		for _, d := range m.docs {
			if cur, err := d.LookupErr(field); err == nil && cur.Equal(v) {
				return fmt.Errorf("%s insert: %w on %s", m.name, ErrDuplicate, field)
			}
		}
	}
	m.docs = append(m.docs, raw)
	return nil
}

func (m *MemoryCollection[T]) EnsureUniqueIndex(_ context.Context, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.unique {
		if f == field {
			return nil
		}
	}
	m.unique = append(m.unique, field)
	return nil
}

// DeleteOne removes the first document matching filter and reports whether one was removed.
func (m *MemoryCollection[T]) DeleteOne(_ context.Context, filter Filter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		ok, err := matches(d, filter)
		if err != nil {
			return false, err
		}
		if ok {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored documents.
func (m *MemoryCollection[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func matches(doc bson.Raw, filter Filter) (bool, error) {
	for field, want := range filter {
		t, data, err := bson.MarshalValue(want)
		if err != nil {
			return false, fmt.Errorf("filter %s: %w", field, err)
		}
		got, err := doc.LookupErr(field)
		if err != nil {
			return false, nil
		}
		if !got.Equal(bson.RawValue{Type: t, Value: data}) {
			return false, nil
		}
	}
	return true, nil
}

// compareRaw orders two BSON values. Values of different types order by
// type number; a missing value sorts lowest.
func compareRaw(a, b bson.RawValue) int {
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case bsontype.DateTime:
		return cmp.Compare(a.DateTime(), b.DateTime())
	case bsontype.String:
		return cmp.Compare(a.StringValue(), b.StringValue())
	case bsontype.Int32:
		return cmp.Compare(a.Int32(), b.Int32())
	case bsontype.Int64:
		return cmp.Compare(a.Int64(), b.Int64())
	case bsontype.Double:
		return cmp.Compare(a.Double(), b.Double())
	}
	return 0
}
