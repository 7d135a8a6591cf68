package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/culinary-server/models"
)

// UserRepository persists marketplace users in the "users" collection.
type UserRepository interface {
	// UpsertUserByEmail applies fields with `$set` semantics to the user
	// whose email matches, creating the user when none exists.
	UpsertUserByEmail(ctx context.Context, email string, fields models.Document) (models.UpdateResult, error)
	// FindUsers lists users in store-default order.
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// SetRole overwrites the role of the user with the given hex id.
	SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error)
}

// ClassRepository persists class listings in the "classes" collection.
type ClassRepository interface {
	CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error)
	FindClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	// UpdateClassFields applies fields with `$set` semantics to one class.
	UpdateClassFields(ctx context.Context, id string, fields models.Document) (models.UpdateResult, error)
}

// CartRepository persists cart items in the "carts" collection.
type CartRepository interface {
	AddCartItem(ctx context.Context, item models.CartItem) (models.InsertResult, error)
	FindCartItems(ctx context.Context, email string) ([]models.CartItem, error)
	// DeleteCartItem removes the item with the given id only if it belongs
	// to email. A miss is reported as DeletedCount 0, not as an error.
	DeleteCartItem(ctx context.Context, id, email string) (models.DeleteResult, error)
}
