// Package tests provides container-backed helpers for integration testing.
package tests

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hebrew-cv/cv-api/internal/redisclient"
)

// TestContainers holds references to test containers and the clients
// connected to them
type TestContainers struct {
	MongoContainer *mongodb.MongoDBContainer
	RedisContainer *tcredis.RedisContainer
	MongoDB        *mongo.Database
	Redis          *redisclient.Client
	Cleanup        func()
}

// SetupTestContainers starts MongoDB and Redis containers for testing
func SetupTestContainers(t *testing.T) *TestContainers {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")

	redisContainer, err := tcredis.Run(ctx,
		"redis:7-alpine",
	)
	require.NoError(t, err, "Failed to start Redis container")

	mongoURI, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	redisURI, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get Redis connection string")

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err, "Failed to connect to MongoDB")

	err = mongoClient.Ping(ctx, nil)
	require.NoError(t, err, "Failed to ping MongoDB")

	database := mongoClient.Database("cvapi_test")

	redisOpts, err := goredis.ParseURL(redisURI)
	require.NoError(t, err, "Failed to parse Redis connection string")
	redis := redisclient.NewClient(goredis.NewClient(redisOpts))

	err = redis.Ping(ctx).Err()
	require.NoError(t, err, "Failed to ping Redis")

	cleanup := func() {
		mongoClient.Disconnect(ctx)
		mongoContainer.Terminate(ctx)
		redisContainer.Terminate(ctx)
	}

	return &TestContainers{
		MongoContainer: mongoContainer,
		RedisContainer: redisContainer,
		MongoDB:        database,
		Redis:          redis,
		Cleanup:        cleanup,
	}
}
