package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type classService struct {
	classRepository store.ClassRepository
	logger          *logger.Logger
}

func NewClassService(classRepository store.ClassRepository, logger *logger.Logger) ClassService {
	return &classService{
		classRepository: classRepository,
		logger:          logger,
	}
}

// CreateClass stores a new listing. Every listing starts pending without
// feedback; the store assigns the id.
func (s *classService) CreateClass(ctx context.Context, class models.Class) (models.InsertResult, error) {
	class.ID = primitive.NilObjectID
	class.Status = models.ClassPending
	class.Feedback = ""

	res, err := s.classRepository.CreateClass(ctx, class)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("error creating class: %w", err)
	}

	return res, nil
}

func (s *classService) GetClasses(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	classes, err := s.classRepository.FindClasses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}

	return classes, nil
}

func (s *classService) GetInstructorClasses(ctx context.Context, email string) ([]models.Class, error) {
	return s.GetClasses(ctx, models.ClassFilter{InstructorEmail: email})
}

// Approve and Deny overwrite the status whatever it was before.
func (s *classService) Approve(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.setStatus(ctx, id, models.ClassApproved)
}

func (s *classService) Deny(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.setStatus(ctx, id, models.ClassDenied)
}

func (s *classService) AddFeedback(ctx context.Context, id, feedback string) (models.UpdateResult, error) {
	res, err := s.classRepository.UpdateClassFields(ctx, id, models.Document{"feedback": feedback})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("error saving class feedback: %w", err)
	}

	return res, nil
}

func (s *classService) setStatus(ctx context.Context, id string, status models.ClassStatus) (models.UpdateResult, error) {
	res, err := s.classRepository.UpdateClassFields(ctx, id, models.Document{"status": status})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("error setting class status to %s: %w", status, err)
	}
	logger.FromContext(ctx).Info().Str("id", id).Str("status", string(status)).Int64("matched", res.MatchedCount).Msg("class status set")

	return res, nil
}
