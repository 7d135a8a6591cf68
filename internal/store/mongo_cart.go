package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCartRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoCartRepository constructs a [CartRepository] backed by m.
func NewMongoCartRepository(m *Mongo, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating mongo cart repository")
	return &mongoCartRepository{
		collection: m.db.Collection(cartsCollection),
		logger:     logger,
	}
}

func (r *mongoCartRepository) AddCartItem(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCartRepository.AddCartItem").Msg("error inserting cart item")
		return models.InsertResult{}, fmt.Errorf("%w: insert cart item: %w", ErrExecutingQuery, err)
	}

	return toInsertResult(res), nil
}

func (r *mongoCartRepository) FindCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	items, err := findAll[models.CartItem](ctx, r.collection, bson.D{{Key: "email", Value: email}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCartRepository.FindCartItems").Msg("error listing cart items")
		return nil, err
	}

	return items, nil
}

func (r *mongoCartRepository) DeleteCartItem(ctx context.Context, id, email string) (models.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}, {Key: "email", Value: email}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCartRepository.DeleteCartItem").Str("id", id).Msg("error deleting cart item")
		return models.DeleteResult{}, fmt.Errorf("%w: delete cart item: %w", ErrExecutingQuery, err)
	}

	return toDeleteResult(res), nil
}
