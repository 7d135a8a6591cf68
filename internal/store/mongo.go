package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared by both backends.
const (
	usersCollection   = "users"
	classesCollection = "classes"
	cartsCollection   = "carts"
)

// Mongo is a connected MongoDB client bound to the application database.
// One Mongo is created at startup and shared by all repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB with the stable v1 server API and
// pings the admin database before returning.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	if err = client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error pinging mongo deployment")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("func", "NewConnectMongo").Msg("pinged your deployment, successfully connected to MongoDB")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: log,
	}, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from mongo: %w", err)
	}
	m.logger.Info().Str("func", "*Mongo.Close").Msg("disconnected from MongoDB")

	return nil
}

func toUpdateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func toInsertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}
}

func toDeleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

// findAll runs Find and decodes every document. An empty result is an empty,
// non-nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %w", ErrExecutingQuery, coll.Name(), err)
	}

	docs := make([]T, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingDocument, coll.Name(), err)
	}

	return docs, nil
}
