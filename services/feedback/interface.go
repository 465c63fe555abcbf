package feedback

import (
	feedbackRepo "canteen/database/repository/feedback"
	"canteen/models"
	"canteen/services/admin"
	"context"
	"time"
)

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, meal string, rating int, message string) (string, error)
	AverageRating(ctx context.Context, meal *string) (*models.AverageRating, error)
	MealBreakdown(ctx context.Context) (*models.DailyBreakdown, error)
	ListFeedback(ctx context.Context, filter models.FeedbackFilter) ([]models.MealFeedback, error)
	DeleteFeedback(ctx context.Context, adminKey, startDate, endDate string) (int64, error)
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Repo     feedbackRepo.FeedbackRepository
	Gate     *admin.Gate
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// now returns the current instant in the configured location.
func (s *DefaultFeedbackService) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

func (s *DefaultFeedbackService) today() string {
	return s.now().Format(models.DateLayout)
}
