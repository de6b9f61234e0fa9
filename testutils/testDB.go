package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbUser = "exiby_admin"
const dbPassword = "password123"
const dbAddress = "localhost:8003"
const dbDatabase = "exiby_admin"

// ConnectToIntegrationTestDB waits for the integrations tests DB to become available
// and returns a connection to the DB
func ConnectToIntegrationTestDB(t *testing.T) *mongo.Database {
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s@%s/%s", dbUser, dbPassword, dbAddress, dbDatabase)))
	assert.NoError(t, err)

	// Giving some time for the DB to boot up
	retryCount := 0
	for {
		err := client.Ping(context.Background(), nil)
		if err == nil {
			break
		} else if retryCount == 3 {
			t.Fatalf("could not connect to db: %s", err)
		}
		retryCount++
		t.Log("could not connect to database, will retry in a bit")
		time.Sleep(5 * time.Second)
	}

	return client.Database(dbDatabase)
}
