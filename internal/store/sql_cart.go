package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a PostgreSQL-backed [CartRepository].
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cartRepository) AddCartItem(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	raw, err := encodeDocument(item)
	if err != nil {
		return models.InsertResult{}, err
	}

	id := primitive.NewObjectID()
	query, args, err := insertCartItemQuery(id.Hex(), item.Email, raw)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cartRepository.AddCartItem").Msg("error inserting cart item")
		return models.InsertResult{}, queryError("insert cart item", err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *cartRepository) FindCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	query, args, err := selectCartItemsQuery(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cartRepository.FindCartItems").Msg("error listing cart items")
		return nil, queryError("find cart items", err)
	}

	return scanDocuments(rows, func(c *models.CartItem, id primitive.ObjectID) { c.ID = id })
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id, email string) (models.DeleteResult, error) {
	if _, err := parseObjectID(id); err != nil {
		return models.DeleteResult{}, err
	}

	query, args, err := deleteCartItemQuery(id, email)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cartRepository.DeleteCartItem").Str("id", id).Msg("error deleting cart item")
		return models.DeleteResult{}, queryError("delete cart item", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
