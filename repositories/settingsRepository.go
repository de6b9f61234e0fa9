package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollection = "settings"

// SettingKey is the field each settings document is keyed by
const SettingKey = "key"

// SettingsRepository is the repository for platform configuration documents.
// Every document holds one setting under a unique key.
type SettingsRepository struct {
	*mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) (*SettingsRepository, error) {
	_, err := db.Collection(settingsCollection).Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: SettingKey, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)

	if err != nil {
		return nil, err
	}

	return &SettingsRepository{
		Collection: db.Collection(settingsCollection),
	}, nil
}
