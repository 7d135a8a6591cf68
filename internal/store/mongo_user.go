package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository] over the "users" collection.
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] backed by m.
func NewMongoUserRepository(m *Mongo, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: m.db.Collection(usersCollection),
		logger:     logger,
	}
}

func (r *mongoUserRepository) UpsertUserByEmail(ctx context.Context, email string, fields models.Document) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: fields}}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.UpsertUserByEmail").Str("email", email).Msg("error upserting user")
		return models.UpdateResult{}, fmt.Errorf("%w: upsert user: %w", ErrExecutingQuery, err)
	}

	return toUpdateResult(res), nil
}

func (r *mongoUserRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := bson.D{}
	if filter.Role != models.RoleUnset {
		query = append(query, bson.E{Key: "role", Value: filter.Role})
	}

	users, err := findAll[models.User](ctx, r.collection, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Str("email", email).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: find user: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *mongoUserRepository) SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.SetRole").Str("id", id).Msg("error setting role")
		return models.UpdateResult{}, fmt.Errorf("%w: set role: %w", ErrExecutingQuery, err)
	}

	return toUpdateResult(res), nil
}
