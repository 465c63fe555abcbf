package feedbackRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes behind the daily average, the listing
// filters and the date-range delete.
func (r *mongoFeedbackRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*opTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "meal", Value: 1}},
			Options: options.Index().SetName("date_meal_idx"),
		},
		{
			Keys:    bson.D{{Key: "weekday", Value: 1}, {Key: "meal", Value: 1}, {Key: "rating", Value: 1}},
			Options: options.Index().SetName("weekday_meal_rating_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create feedback indexes: %w", err)
	}
	return nil
}
