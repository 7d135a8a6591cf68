package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SaveUser upserts the profile fields of user under email. Empty profile
// fields are left untouched on an existing user.
func (s *userService) SaveUser(ctx context.Context, email string, user models.User) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	}

	fields := models.Document{"email": email}
	if user.Name != "" {
		fields["name"] = user.Name
	}
	if user.PhotoURL != "" {
		fields["photoURL"] = user.PhotoURL
	}

	res, err := s.userRepository.UpsertUserByEmail(ctx, email, fields)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("error saving user: %w", err)
	}

	return res, nil
}

func (s *userService) GetUsers(ctx context.Context, role models.Role) ([]models.User, error) {
	users, err := s.userRepository.FindUsers(ctx, models.UserFilter{Role: role})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasAnyRole(ctx, email, models.RoleAdmin)
}

func (s *userService) IsInstructor(ctx context.Context, email string) (bool, error) {
	return s.HasAnyRole(ctx, email, models.RoleInstructor)
}

func (s *userService) HasAnyRole(ctx context.Context, email string, roles ...models.Role) (bool, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		logger.FromContext(ctx).Debug().Str("email", email).Msg("role check for unknown user")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error looking up user role: %w", err)
	}

	return slices.Contains(roles, user.Role), nil
}

func (s *userService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.setRole(ctx, id, models.RoleAdmin)
}

func (s *userService) MakeInstructor(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.setRole(ctx, id, models.RoleInstructor)
}

func (s *userService) setRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	res, err := s.userRepository.SetRole(ctx, id, role)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("error promoting user to %s: %w", role, err)
	}
	logger.FromContext(ctx).Info().Str("id", id).Str("role", string(role)).Int64("matched", res.MatchedCount).Msg("role set")

	return res, nil
}
