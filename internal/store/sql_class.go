package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type classRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClassRepository constructs a PostgreSQL-backed [ClassRepository].
func NewClassRepository(db *DB, logger *logger.Logger) ClassRepository {
	logger.Debug().Msg("creating class repository")
	return &classRepository{
		db:     db,
		logger: logger,
	}
}

func (r *classRepository) CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error) {
	raw, err := encodeDocument(class)
	if err != nil {
		return models.InsertResult{}, err
	}

	id := primitive.NewObjectID()
	query, args, err := insertClassQuery(id.Hex(), raw)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*classRepository.CreateClass").Msg("error inserting class")
		return models.InsertResult{}, queryError("insert class", err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *classRepository) FindClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	query, args, err := selectClassesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*classRepository.FindClasses").Msg("error listing classes")
		return nil, queryError("find classes", err)
	}

	return scanDocuments(rows, func(c *models.Class, id primitive.ObjectID) { c.ID = id })
}

func (r *classRepository) UpdateClassFields(ctx context.Context, id string, fields models.Document) (models.UpdateResult, error) {
	if _, err := parseObjectID(id); err != nil {
		return models.UpdateResult{}, err
	}

	return mergeDocument(ctx, r.db, classesCollection, id, fields)
}
