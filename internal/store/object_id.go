package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID converts a 24 hex character id into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
	}

	return oid, nil
}
