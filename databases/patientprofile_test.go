package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/databases/mocks"
	"github.com/linesmerrill/hospital-api/models"
)

func newProfileDB(coll *mocks.CollectionHelper) databases.PatientProfileDatabase {
	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "patientprofiles").Return(coll)
	return databases.NewPatientProfileDatabase(dbHelper)
}

func TestPatientProfileDatabase_CreateDefaultsRelation(t *testing.T) {
	coll := &mocks.CollectionHelper{}
	var stored *models.PatientProfile
	coll.On("InsertOne", context.Background(), mock.Anything).
		Return(&mocks.InsertOneResultHelper{}, nil).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.PatientProfile)
		})

	profile := &models.PatientProfile{UserID: primitive.NewObjectID(), Name: "Ana"}
	err := newProfileDB(coll).CreatePatientProfile(context.Background(), profile)

	assert.NoError(t, err)
	assert.Equal(t, models.RelationSelf, stored.Relation)
	assert.False(t, stored.ID.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestPatientProfileDatabase_GetPatientProfilesByUserID(t *testing.T) {
	owner := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("All", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out := args.Get(1).(*[]models.PatientProfile)
		*out = append(*out,
			models.PatientProfile{UserID: owner, Name: "Ana", Relation: models.RelationSelf},
			models.PatientProfile{UserID: owner, Name: "Leo", Relation: models.RelationChild},
		)
	})
	cursor.On("Close", context.Background()).Return(nil)
	coll.On("Find", context.Background(), bson.M{"userId": owner}, mock.Anything).Return(cursor, nil)
	coll.On("CountDocuments", context.Background(), bson.M{"userId": owner}).Return(int64(12), nil)

	resp, err := newProfileDB(coll).GetPatientProfilesByUserID(context.Background(), owner.Hex(), 10, 1)

	assert.NoError(t, err)
	assert.Len(t, resp.Profiles, 2)
	assert.Equal(t, models.Pagination{CurrentPage: 1, TotalPages: 2, TotalRecords: 12, Limit: 10}, resp.Pagination)
	cursor.AssertExpectations(t)
}

func TestPatientProfileDatabase_GetPatientProfilesByUserIDFindError(t *testing.T) {
	owner := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	coll.On("Find", context.Background(), bson.M{"userId": owner}, mock.Anything).Return(nil, errors.New("mocked-error"))

	resp, err := newProfileDB(coll).GetPatientProfilesByUserID(context.Background(), owner.Hex(), 10, 0)

	assert.Nil(t, resp)
	assert.EqualError(t, err, "mocked-error")
}

func TestPatientProfileDatabase_UpdateNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	coll.On("UpdateOne", context.Background(), bson.M{"_id": id}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	err := newProfileDB(coll).UpdatePatientProfile(context.Background(), id.Hex(), &models.PatientProfile{Name: "Ana"})

	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestPatientProfileDatabase_DeleteByUserID(t *testing.T) {
	owner := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	coll.On("DeleteMany", context.Background(), bson.M{"userId": owner}).
		Return(&mongo.DeleteResult{DeletedCount: 3}, nil)

	n, err := newProfileDB(coll).DeletePatientProfilesByUserID(context.Background(), owner.Hex())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
