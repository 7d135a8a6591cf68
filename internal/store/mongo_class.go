package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoClassRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoClassRepository constructs a [ClassRepository] backed by m.
func NewMongoClassRepository(m *Mongo, logger *logger.Logger) ClassRepository {
	logger.Debug().Msg("creating mongo class repository")
	return &mongoClassRepository{
		collection: m.db.Collection(classesCollection),
		logger:     logger,
	}
}

func (r *mongoClassRepository) CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoClassRepository.CreateClass").Msg("error inserting class")
		return models.InsertResult{}, fmt.Errorf("%w: insert class: %w", ErrExecutingQuery, err)
	}

	return toInsertResult(res), nil
}

func (r *mongoClassRepository) FindClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	query := bson.D{}
	if filter.InstructorEmail != "" {
		query = append(query, bson.E{Key: "instructor.email", Value: filter.InstructorEmail})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}

	classes, err := findAll[models.Class](ctx, r.collection, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoClassRepository.FindClasses").Msg("error listing classes")
		return nil, err
	}

	return classes, nil
}

func (r *mongoClassRepository) UpdateClassFields(ctx context.Context, id string, fields models.Document) (models.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	update := bson.D{{Key: "$set", Value: fields}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoClassRepository.UpdateClassFields").Str("id", id).Msg("error updating class")
		return models.UpdateResult{}, fmt.Errorf("%w: update class: %w", ErrExecutingQuery, err)
	}

	return toUpdateResult(res), nil
}
