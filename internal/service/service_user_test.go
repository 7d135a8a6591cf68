package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/mock"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

func TestUserService_SaveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("role is never written", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().
			UpsertUserByEmail(ctx, "a@x.io", models.Document{"email": "a@x.io", "name": "A", "photoURL": "http://p"}).
			Return(models.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil)

		res, err := svc.SaveUser(ctx, "a@x.io", models.User{Email: "a@x.io", Name: "A", PhotoURL: "http://p", Role: models.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)
	})

	t.Run("empty profile fields are skipped", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().
			UpsertUserByEmail(ctx, "a@x.io", models.Document{"email": "a@x.io"}).
			Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil)

		res, err := svc.SaveUser(ctx, "a@x.io", models.User{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
	})

	t.Run("no email", func(t *testing.T) {
		svc, _ := newTestUserService(t)

		_, err := svc.SaveUser(ctx, "", models.User{Name: "A"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().UpsertUserByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.UpdateResult{}, store.ErrExecutingQuery)

		_, err := svc.SaveUser(ctx, "a@x.io", models.User{})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestUserService_GetUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestUserService(t)

	want := []models.User{{Email: "i@x.io", Role: models.RoleInstructor}}
	repo.EXPECT().FindUsers(ctx, models.UserFilter{Role: models.RoleInstructor}).Return(want, nil)

	got, err := svc.GetUsers(ctx, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_RoleChecks(t *testing.T) {
	ctx := context.Background()
	const email = "u@x.io"

	isAdmin := func(s UserService) (bool, error) {
		return s.IsAdmin(ctx, email)
	}
	isInstructor := func(s UserService) (bool, error) {
		return s.IsInstructor(ctx, email)
	}
	isStaff := func(s UserService) (bool, error) {
		return s.HasAnyRole(ctx, email, models.RoleInstructor, models.RoleAdmin)
	}

	tests := []struct {
		name    string
		user    models.User
		findErr error
		check   func(UserService) (bool, error)
		want    bool
		wantErr error
	}{
		{name: "admin is admin", user: models.User{Role: models.RoleAdmin}, check: isAdmin, want: true},
		{name: "instructor is not admin", user: models.User{Role: models.RoleInstructor}, check: isAdmin},
		{name: "instructor is instructor", user: models.User{Role: models.RoleInstructor}, check: isInstructor, want: true},
		{name: "admin passes instructor-or-admin", user: models.User{Role: models.RoleAdmin}, check: isStaff, want: true},
		{name: "student fails instructor-or-admin", user: models.User{Role: models.RoleStudent}, check: isStaff},
		{name: "unknown user holds no role", findErr: store.ErrNoUserWasFound, check: isAdmin},
		{name: "store failure", findErr: store.ErrExecutingQuery, check: isInstructor, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserService(t)
			repo.EXPECT().FindUserByEmail(ctx, email).Return(tt.user, tt.findErr)

			got, err := tt.check(svc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_Promotions(t *testing.T) {
	ctx := context.Background()
	id := "65a1b2c3d4e5f60718293a4b"

	t.Run("make admin", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().SetRole(ctx, id, models.RoleAdmin).Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		res, err := svc.MakeAdmin(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ModifiedCount)
	})

	t.Run("make instructor on unknown id", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().SetRole(ctx, id, models.RoleInstructor).Return(models.UpdateResult{Acknowledged: true}, nil)

		res, err := svc.MakeInstructor(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().SetRole(ctx, "bad", models.RoleAdmin).Return(models.UpdateResult{}, store.ErrInvalidID)

		_, err := svc.MakeAdmin(ctx, "bad")
		assert.True(t, errors.Is(err, store.ErrInvalidID))
	})
}
