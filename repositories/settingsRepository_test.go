//go:build integration
// +build integration

package repositories

import (
	"context"
	"testing"

	"github.com/exiby/exiby_admin/testutils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func Test_NewSettingsRepository__should_return_settings_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)

	sRepo, err := NewSettingsRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "settings", sRepo.Name())
	db.Collection("settings").Drop(context.Background())
}

func Test_NewSettingsRepository__create_required_number_of_indexes(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)

	_, err := NewSettingsRepository(db)
	assert.NoError(t, err)

	cur, err := db.Collection("settings").Indexes().List(context.Background())
	assert.NoError(t, err)
	defer cur.Close(context.Background())

	var noOfIndexes int
	for cur.Next(context.Background()) {
		var index bson.M
		err = cur.Decode(&index)
		assert.NoError(t, err)
		noOfIndexes++
	}

	assert.Equal(t, 2, noOfIndexes)
	db.Collection("settings").Drop(context.Background())
}
