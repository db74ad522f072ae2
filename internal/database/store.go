package database

import (
	"context"

	"github.com/viadorassan/viador/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names as laid out in the database.
const (
	CollectionContactInfo     = "contact_info"
	CollectionServices        = "services"
	CollectionCourses         = "it_courses"
	CollectionContactMessages = "contact_messages"
)

// Store bundles the typed collections the service reads and writes.
type Store struct {
	ContactInfo Collection[models.ContactInfo]
	Services    Collection[models.Service]
	Courses     Collection[models.ITCourse]
	Messages    Collection[models.ContactMessage]

	// Healthy reports whether the backing database answers. Nil means always healthy.
	Healthy func(ctx context.Context) error
}

// NewMongoStore binds a Store to db. The client behind db stays owned by the caller.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		ContactInfo: NewMongoCollection[models.ContactInfo](db.Collection(CollectionContactInfo)),
		Services:    NewMongoCollection[models.Service](db.Collection(CollectionServices)),
		Courses:     NewMongoCollection[models.ITCourse](db.Collection(CollectionCourses)),
		Messages:    NewMongoCollection[models.ContactMessage](db.Collection(CollectionContactMessages)),
		Healthy: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	}
}

// NewMemoryStore returns a Store backed by MemoryCollections.
func NewMemoryStore() *Store {
	return &Store{
		ContactInfo: NewMemoryCollection[models.ContactInfo](CollectionContactInfo),
		Services:    NewMemoryCollection[models.Service](CollectionServices),
		Courses:     NewMemoryCollection[models.ITCourse](CollectionCourses),
		Messages:    NewMemoryCollection[models.ContactMessage](CollectionContactMessages),
	}
}

// Ping checks the backing database.
func (s *Store) Ping(ctx context.Context) error {
	if s.Healthy == nil {
		return nil
	}
	return s.Healthy(ctx)
}

// EnsureIndexes creates the unique indexes on ids and natural keys.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	steps := []struct {
		ensure func(context.Context, string) error
		field  string
	}{
		{s.ContactInfo.EnsureUniqueIndex, "id"},
		{s.ContactInfo.EnsureUniqueIndex, "name"},
		{s.Services.EnsureUniqueIndex, "id"},
		{s.Services.EnsureUniqueIndex, "title"},
		{s.Courses.EnsureUniqueIndex, "id"},
		{s.Courses.EnsureUniqueIndex, "title"},
		{s.Courses.EnsureUniqueIndex, "subject"},
		{s.Messages.EnsureUniqueIndex, "id"},
	}
	for _, st := range steps {
		if err := st.ensure(ctx, st.field); err != nil {
			return err
		}
	}
	return nil
}
