package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/mock"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const testClassID = "65a1b2c3d4e5f60718293a4b"

func newTestClassService(t *testing.T) (ClassService, *mock.MockClassRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClassRepository(ctrl)
	return NewClassValidationService().Wrap(NewClassService(repo, logger.Nop())), repo
}

func TestClassService_CreateClass(t *testing.T) {
	ctx := context.Background()
	instructor := models.Instructor{Email: "i@x.io", Name: "Chef"}

	t.Run("new class starts pending", func(t *testing.T) {
		svc, repo := newTestClassService(t)
		repo.EXPECT().
			CreateClass(ctx, models.Class{Title: "Pasta", Instructor: instructor, Status: models.ClassPending}).
			Return(models.InsertResult{Acknowledged: true, InsertedID: "x"}, nil)

		res, err := svc.CreateClass(ctx, models.Class{Title: "Pasta", Instructor: instructor})
		require.NoError(t, err)
		assert.Equal(t, "x", res.InsertedID)
	})

	clientSet := []struct {
		name     string
		status   models.ClassStatus
		feedback string
	}{
		{name: "approved by its author", status: models.ClassApproved, feedback: "great"},
		{name: "denied", status: models.ClassDenied},
		{name: "unknown status", status: "banana"},
	}
	for _, tt := range clientSet {
		t.Run("client status is replaced: "+tt.name, func(t *testing.T) {
			svc, repo := newTestClassService(t)
			repo.EXPECT().
				CreateClass(ctx, models.Class{Title: "Pasta", Instructor: instructor, Status: models.ClassPending}).
				Return(models.InsertResult{Acknowledged: true}, nil)

			_, err := svc.CreateClass(ctx, models.Class{
				ID:         primitive.NewObjectID(),
				Title:      "Pasta",
				Instructor: instructor,
				Status:     tt.status,
				Feedback:   tt.feedback,
			})
			require.NoError(t, err)
		})
	}

	t.Run("missing title never reaches the store", func(t *testing.T) {
		svc, _ := newTestClassService(t)

		_, err := svc.CreateClass(ctx, models.Class{Instructor: instructor})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("missing instructor email", func(t *testing.T) {
		svc, _ := newTestClassService(t)

		_, err := svc.CreateClass(ctx, models.Class{Title: "Pasta"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newTestClassService(t)
		repo.EXPECT().CreateClass(gomock.Any(), gomock.Any()).Return(models.InsertResult{}, store.ErrExecutingQuery)

		_, err := svc.CreateClass(ctx, models.Class{Title: "Pasta", Instructor: instructor})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestClassService_Listings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestClassService(t)

	approved := []models.Class{{Title: "Pasta", Status: models.ClassApproved}}
	mine := []models.Class{{Title: "Bread", Instructor: models.Instructor{Email: "i@x.io"}}}

	gomock.InOrder(
		repo.EXPECT().FindClasses(ctx, models.ClassFilter{Status: models.ClassApproved}).Return(approved, nil),
		repo.EXPECT().FindClasses(ctx, models.ClassFilter{InstructorEmail: "i@x.io"}).Return(mine, nil),
	)

	got, err := svc.GetClasses(ctx, models.ClassFilter{Status: models.ClassApproved})
	require.NoError(t, err)
	assert.Equal(t, approved, got)

	got, err = svc.GetInstructorClasses(ctx, "i@x.io")
	require.NoError(t, err)
	assert.Equal(t, mine, got)
}

func TestClassService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestClassService(t)
	updated := models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}

	// approve then deny: the last write wins
	gomock.InOrder(
		repo.EXPECT().UpdateClassFields(ctx, testClassID, models.Document{"status": models.ClassApproved}).Return(updated, nil),
		repo.EXPECT().UpdateClassFields(ctx, testClassID, models.Document{"status": models.ClassDenied}).Return(updated, nil),
	)

	_, err := svc.Approve(ctx, testClassID)
	require.NoError(t, err)
	res, err := svc.Deny(ctx, testClassID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
}

func TestClassService_AddFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		svc, repo := newTestClassService(t)
		repo.EXPECT().
			UpdateClassFields(ctx, testClassID, models.Document{"feedback": "more salt"}).
			Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		_, err := svc.AddFeedback(ctx, testClassID, "more salt")
		require.NoError(t, err)
	})

	t.Run("empty feedback", func(t *testing.T) {
		svc, _ := newTestClassService(t)

		_, err := svc.AddFeedback(ctx, testClassID, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := newTestClassService(t)

		_, err := svc.AddFeedback(ctx, "", "more salt")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, repo := newTestClassService(t)
		repo.EXPECT().UpdateClassFields(ctx, "bad", gomock.Any()).Return(models.UpdateResult{}, store.ErrInvalidID)

		_, err := svc.AddFeedback(ctx, "bad", "more salt")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}
