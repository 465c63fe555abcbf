package handlers

import (
	"context"

	"canteen/models"
	"canteen/services/feedback"
	"canteen/services/submission"

	"github.com/stretchr/testify/mock"
)

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) SubmitFeedback(ctx context.Context, meal string, rating int, message string) (string, error) {
	args := m.Called(ctx, meal, rating, message)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackService) AverageRating(ctx context.Context, meal *string) (*models.AverageRating, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AverageRating), args.Error(1)
}

func (m *MockFeedbackService) MealBreakdown(ctx context.Context) (*models.DailyBreakdown, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyBreakdown), args.Error(1)
}

func (m *MockFeedbackService) ListFeedback(ctx context.Context, filter models.FeedbackFilter) ([]models.MealFeedback, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealFeedback), args.Error(1)
}

func (m *MockFeedbackService) DeleteFeedback(ctx context.Context, adminKey, startDate, endDate string) (int64, error) {
	args := m.Called(ctx, adminKey, startDate, endDate)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, s models.Submission) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

// compile-time checks
var (
	_ feedback.FeedbackService     = (*MockFeedbackService)(nil)
	_ submission.SubmissionService = (*MockSubmissionService)(nil)
)
