package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/exiby/exiby_admin/environment"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, error) {
	for _, name := range []string{environment.MongoUser, environment.MongoPassword, environment.MongoHost, environment.MongoDatabase} {
		if env.Get(name) == "" {
			return nil, errors.New(fmt.Sprintf("%s must be set to connect to the database", name))
		}
	}

	connectionURL := fmt.Sprintf(`mongodb://%s:%s@%s/%s`, env.Get(environment.MongoUser), env.Get(environment.MongoPassword),
		env.Get(environment.MongoHost), env.Get(environment.MongoDatabase))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionURL))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database", zap.String("host", env.Get(environment.MongoHost)))

	return client.Database(env.Get(environment.MongoDatabase)), nil
}
