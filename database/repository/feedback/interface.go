package feedbackRepo

import (
	"canteen/database"
	"canteen/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// opTimeout bounds every single store call.
const opTimeout = 5 * time.Second

type FeedbackRepository interface {
	Create(ctx context.Context, fb models.MealFeedback) (string, error)
	Ratings(ctx context.Context, date string, meal *string) ([]int, error)
	Find(ctx context.Context, filter models.FeedbackFilter) ([]models.MealFeedback, error)
	DeleteRange(ctx context.Context, r models.DateRange) (int64, error)
	AverageByMeal(ctx context.Context, date string) ([]models.MealAverage, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo returns a FeedbackRepository backed by the
// meal_feedback collection of db.
func NewMongoFeedbackRepo(db *mongo.Database) FeedbackRepository {
	return &mongoFeedbackRepo{
		coll: db.Collection(database.MealFeedbackCollection),
	}
}
