package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/viadorassan/viador/backend/go-services/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find one returns nil when empty", func(mt *mtest.T) {
		col := NewMongoCollection[models.ContactInfo](mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "viador.contact_info", mtest.FirstBatch))

		got, err := col.FindOne(context.Background(), Eq("name", "Viador Assan"))
		require.NoError(mt, err)
		require.Nil(mt, got)
	})

	mt.Run("find one decodes", func(mt *mtest.T) {
		col := NewMongoCollection[models.ITCourse](mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "viador.it_courses", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "c1"},
			{Key: "subject", Value: "excel"},
			{Key: "title", Value: "Microsoft Excel"},
			{Key: "level", Value: "advanced"},
			{Key: "topics", Value: bson.A{"Fórmulas avançadas"}},
			{Key: "created_at", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}))

		got, err := col.FindOne(context.Background(), Eq("subject", models.SubjectExcel))
		require.NoError(mt, err)
		require.NotNil(mt, got)
		require.Equal(mt, models.SubjectExcel, got.Subject)
		require.Equal(mt, models.LevelAdvanced, got.Level)
		require.Equal(mt, []string{"Fórmulas avançadas"}, got.Topics)
	})

	mt.Run("find decodes every document", func(mt *mtest.T) {
		col := NewMongoCollection[models.Service](mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "viador.services", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "a"}, {Key: "type", Value: "tutoring"}, {Key: "title", Value: "A"}},
			bson.D{{Key: "id", Value: "b"}, {Key: "type", Value: "computer-training"}, {Key: "title", Value: "B"}},
		))

		list, err := col.Find(context.Background(), FindOptions{})
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, models.ServiceComputerTraining, list[1].Type)
	})

	mt.Run("find rejects unknown stored enum", func(mt *mtest.T) {
		col := NewMongoCollection[models.Service](mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "viador.services", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "a"}, {Key: "type", Value: "consulting"}},
		))

		_, err := col.Find(context.Background(), FindOptions{})
		require.Error(mt, err)
	})

	mt.Run("find reads legacy enum values", func(mt *mtest.T) {
		col := NewMongoCollection[models.Service](mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "viador.services", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "a"}, {Key: "type", Value: "explicacao"}, {Key: "title", Value: "Explicação"}},
		))

		list, err := col.Find(context.Background(), FindOptions{})
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		require.Equal(mt, models.ServiceTutoring, list[0].Type)
	})

	mt.Run("insert maps duplicate key", func(mt *mtest.T) {
		col := NewMongoCollection[models.Service](mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}))

		err := col.InsertOne(context.Background(), &models.Service{ID: "a", Type: models.ServiceTutoring, Title: "A"})
		require.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("insert and index succeed", func(mt *mtest.T) {
		col := NewMongoCollection[models.ContactMessage](mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, col.InsertOne(context.Background(), &models.ContactMessage{ID: "m1", Name: "Ana"}))
		require.NoError(mt, col.EnsureUniqueIndex(context.Background(), "id"))
	})
}
