package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/viadorassan/viador/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryCollection_FindOneAndInsert(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryCollection[models.ITCourse](CollectionCourses)

	got, err := col.FindOne(ctx, Eq("subject", models.SubjectExcel))
	require.NoError(t, err)
	require.Nil(t, got)

	c := models.ITCourse{ID: "c1", Subject: models.SubjectExcel, Title: "Microsoft Excel", Level: models.LevelAdvanced, CreatedAt: models.Timestamp(time.Now())}
	require.NoError(t, col.InsertOne(ctx, &c))

	got, err = col.FindOne(ctx, Eq("subject", models.SubjectExcel))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Microsoft Excel", got.Title)
	require.True(t, c.CreatedAt.Equal(got.CreatedAt))

	got, err = col.FindOne(ctx, Filter{"subject": models.SubjectExcel, "title": "Other"})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryCollection_UniqueIndex(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryCollection[models.Service](CollectionServices)
	require.NoError(t, col.EnsureUniqueIndex(ctx, "title"))
	require.NoError(t, col.EnsureUniqueIndex(ctx, "title"))

	require.NoError(t, col.InsertOne(ctx, &models.Service{ID: "a", Type: models.ServiceTutoring, Title: "T"}))
	err := col.InsertOne(ctx, &models.Service{ID: "b", Type: models.ServiceTutoring, Title: "T"})
	require.ErrorIs(t, err, ErrDuplicate)
	require.Equal(t, 1, col.Len())
}

func TestMemoryCollection_FindSortsDescendingAndCaps(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryCollection[models.ContactMessage](CollectionContactMessages)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		m := models.ContactMessage{ID: fmt.Sprintf("m%03d", i), Name: "n", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, col.InsertOne(ctx, &m))
	}

	all, err := col.Find(ctx, FindOptions{SortDesc: "created_at"})
	require.NoError(t, err)
	require.Len(t, all, int(MaxFindLimit))
	require.Equal(t, "m119", all[0].ID)
	for i := 1; i < len(all); i++ {
		require.True(t, all[i-1].CreatedAt.After(all[i].CreatedAt))
	}

	few, err := col.Find(ctx, FindOptions{Limit: 3})
	require.NoError(t, err)
	require.Len(t, few, 3)
	require.Equal(t, "m000", few[0].ID)

	over, err := col.Find(ctx, FindOptions{Limit: 1000})
	require.NoError(t, err)
	require.Len(t, over, int(MaxFindLimit))
}

func TestMemoryCollection_FindEmptyIsNotNil(t *testing.T) {
	col := NewMemoryCollection[models.Service](CollectionServices)
	list, err := col.Find(context.Background(), FindOptions{})
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestMemoryCollection_DecodeRejectsUnknownEnum(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryCollection[models.ITCourse](CollectionCourses)
	require.NoError(t, col.InsertDocument(ctx, bson.M{"id": "x", "subject": "cobol", "level": "basic"}))

	_, err := col.FindOne(ctx, Eq("id", "x"))
	require.Error(t, err)
	_, err = col.Find(ctx, FindOptions{})
	require.Error(t, err)
}

func TestMemoryCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryCollection[models.ContactInfo](CollectionContactInfo)
	require.NoError(t, col.InsertOne(ctx, &models.ContactInfo{ID: "1", Name: "Viador Assan"}))

	ok, err := col.DeleteOne(ctx, Eq("name", "Viador Assan"))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = col.DeleteOne(ctx, Eq("name", "Viador Assan"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_EnsureIndexesAndPing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.EnsureIndexes(ctx))
	require.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Courses.InsertOne(ctx, &models.ITCourse{ID: "1", Subject: models.SubjectQGIS, Title: "QGIS", Level: models.LevelAdvanced}))
	err := s.Courses.InsertOne(ctx, &models.ITCourse{ID: "2", Subject: models.SubjectQGIS, Title: "QGIS 2", Level: models.LevelAdvanced})
	require.ErrorIs(t, err, ErrDuplicate)

	s.Healthy = func(context.Context) error { return fmt.Errorf("down") }
	require.Error(t, s.Ping(ctx))
}
