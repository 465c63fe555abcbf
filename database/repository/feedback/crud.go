package feedbackRepo

import (
	"canteen/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create inserts a feedback record and returns the generated ObjectID as hex.
func (r *mongoFeedbackRepo) Create(ctx context.Context, fb models.MealFeedback) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fb)
	if err != nil {
		return "", fmt.Errorf("failed to insert feedback: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// DeleteRange removes every record whose date lies inside r. A zero range
// removes the whole collection.
func (r *mongoFeedbackRepo) DeleteRange(ctx context.Context, dr models.DateRange) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, dateRangeQuery(dr))
	if err != nil {
		return 0, fmt.Errorf("failed to delete feedback: %w", err)
	}
	return res.DeletedCount, nil
}
