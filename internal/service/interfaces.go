package service

import (
	"context"

	"github.com/MKhiriev/culinary-server/models"
)

// AuthService issues and verifies stateless access tokens.
type AuthService interface {
	CreateToken(ctx context.Context, claims models.Claims) (string, error)
	// ParseToken returns ErrTokenIsExpired for an expired token and
	// ErrUnauthorized for any other verification failure.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type UserService interface {
	// SaveUser creates or updates the user keyed by email. The role is never
	// written here.
	SaveUser(ctx context.Context, email string, user models.User) (models.UpdateResult, error)
	GetUsers(ctx context.Context, role models.Role) ([]models.User, error)

	IsAdmin(ctx context.Context, email string) (bool, error)
	IsInstructor(ctx context.Context, email string) (bool, error)
	// HasAnyRole reports whether the user holds one of roles. An unknown
	// user holds none.
	HasAnyRole(ctx context.Context, email string, roles ...models.Role) (bool, error)

	MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error)
	MakeInstructor(ctx context.Context, id string) (models.UpdateResult, error)
}

type ClassService interface {
	CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error)
	GetClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	GetInstructorClasses(ctx context.Context, email string) ([]models.Class, error)

	Approve(ctx context.Context, id string) (models.UpdateResult, error)
	Deny(ctx context.Context, id string) (models.UpdateResult, error)
	AddFeedback(ctx context.Context, id, feedback string) (models.UpdateResult, error)
}

type CartService interface {
	AddItem(ctx context.Context, item models.CartItem) (models.InsertResult, error)
	GetItems(ctx context.Context, email string) ([]models.CartItem, error)
	// RemoveItem deletes the item only when it belongs to email.
	RemoveItem(ctx context.Context, id, email string) (models.DeleteResult, error)
}

// ClassServiceWrapper defines middleware composition for ClassService.
// Implementations wrap an existing ClassService to add behavior such as
// validation.
type ClassServiceWrapper interface {
	Wrap(ClassService) ClassService
}

// CartServiceWrapper defines middleware composition for CartService.
type CartServiceWrapper interface {
	Wrap(CartService) CartService
}
