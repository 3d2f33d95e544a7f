package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/databases/mocks"
)

func TestEnsureIndexes(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	coll.On("CreateIndexes", context.Background(), mock.Anything).Return([]string{"idx"}, nil)
	for name := range databases.Indexes {
		dbHelper.On("Collection", name).Return(coll)
	}

	err := databases.EnsureIndexes(context.Background(), dbHelper)

	assert.NoError(t, err)
	coll.AssertNumberOfCalls(t, "CreateIndexes", len(databases.Indexes))
}

func TestEnsureIndexesError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	coll.On("CreateIndexes", context.Background(), mock.Anything).Return(nil, errors.New("boom"))
	dbHelper.On("Collection", mock.Anything).Return(coll)

	err := databases.EnsureIndexes(context.Background(), dbHelper)

	assert.ErrorContains(t, err, "boom")
}
