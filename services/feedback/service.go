package feedback

import (
	"canteen/models"
	"context"

	"go.uber.org/zap"
)

// SubmitFeedback stores one rating stamped with the current weekday and date.
func (s *DefaultFeedbackService) SubmitFeedback(ctx context.Context, meal string, rating int, message string) (string, error) {
	fb := models.NewMealFeedback(meal, rating, message, s.now())
	id, err := s.Repo.Create(ctx, fb)
	if err != nil {
		return "", err
	}
	zap.L().Debug("feedback stored",
		zap.String("id", id),
		zap.String("meal", meal),
		zap.String("date", fb.Date),
	)
	return id, nil
}

// ListFeedback returns every record matching filter. An empty result is not
// an error.
func (s *DefaultFeedbackService) ListFeedback(ctx context.Context, filter models.FeedbackFilter) ([]models.MealFeedback, error) {
	return s.Repo.Find(ctx, filter)
}

// DeleteFeedback checks the admin key before touching the store, then
// removes the records inside the requested range. No dates means every
// record.
func (s *DefaultFeedbackService) DeleteFeedback(ctx context.Context, adminKey, startDate, endDate string) (int64, error) {
	if err := s.Gate.Authorize(adminKey); err != nil {
		return 0, err
	}

	dr, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return 0, err
	}

	deleted, err := s.Repo.DeleteRange(ctx, dr)
	if err != nil {
		return 0, err
	}
	zap.L().Info("feedback deleted",
		zap.Int64("deleted", deleted),
		zap.String("start_date", dr.Start),
		zap.String("end_date", dr.End),
	)
	return deleted, nil
}
