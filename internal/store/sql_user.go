package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// The email column mirrors doc->>'email' and carries the unique constraint.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUserByEmail merges fields into the stored document. The reported
// counts follow the document store: an insert is an upsert with no match, an
// update is one matched and one modified document.
func (r *userRepository) UpsertUserByEmail(ctx context.Context, email string, fields models.Document) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	doc := make(models.Document, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["email"] = email

	raw, err := encodeDocument(doc)
	if err != nil {
		return models.UpdateResult{}, err
	}

	query, args, err := upsertUserQuery(primitive.NewObjectID().Hex(), email, raw)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id       string
		inserted bool
	)
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &inserted); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUserByEmail").Str("email", email).Msg("error upserting user")
		return models.UpdateResult{}, queryError("upsert user", err)
	}

	if !inserted {
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: stored id %q: %w", ErrDecodingDocument, id, err)
	}

	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (r *userRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query, args, err := selectUsersQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUsers").Msg("error listing users")
		return nil, queryError("find users", err)
	}

	return scanDocuments(rows, setUserID)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := selectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanDocument(r.db.QueryRowContext(ctx, query, args...), setUserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case errors.Is(err, ErrScanningRows):
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Str("email", email).Msg("error finding user")
		return models.User{}, queryError("find user", err)
	case err != nil:
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	if _, err := parseObjectID(id); err != nil {
		return models.UpdateResult{}, err
	}

	return mergeDocument(ctx, r.db, usersCollection, id, models.Document{"role": role})
}

func setUserID(u *models.User, id primitive.ObjectID) { u.ID = id }

// mergeDocument applies fields to the row with id and reports it as a
// single-document update.
func mergeDocument(ctx context.Context, db *DB, table, id string, fields models.Document) (models.UpdateResult, error) {
	raw, err := encodeDocument(fields)
	if err != nil {
		return models.UpdateResult{}, err
	}

	query, args, err := mergeDocumentQuery(table, id, raw)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mergeDocument").Str("table", table).Str("id", id).Msg("error updating document")
		return models.UpdateResult{}, queryError("update "+table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}
