package feedback

import (
	"canteen/models"
	"context"
)

// AverageRating averages today's ratings, optionally for one meal only.
func (s *DefaultFeedbackService) AverageRating(ctx context.Context, meal *string) (*models.AverageRating, error) {
	today := s.today()

	ratings, err := s.Repo.Ratings(ctx, today, meal)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, newNotFound(msgNoRatingsToday)
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	scope := models.AllMeals
	if meal != nil {
		scope = *meal
	}
	return &models.AverageRating{
		AverageRating: float64(sum) / float64(len(ratings)),
		Date:          today,
		Meal:          scope,
	}, nil
}

// MealBreakdown returns today's average per meal.
func (s *DefaultFeedbackService) MealBreakdown(ctx context.Context) (*models.DailyBreakdown, error) {
	today := s.today()

	meals, err := s.Repo.AverageByMeal(ctx, today)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, newNotFound(msgNoRatingsToday)
	}
	return &models.DailyBreakdown{Date: today, Meals: meals}, nil
}
