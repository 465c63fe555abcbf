package feedbackRepo

import (
	"canteen/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listQuery ANDs every constraint present in f.
func listQuery(f models.FeedbackFilter) bson.M {
	query := bson.M{}
	if f.Weekday != nil {
		query["weekday"] = *f.Weekday
	}
	if f.Meal != nil {
		query["meal"] = *f.Meal
	}
	if f.Rating != nil {
		query["rating"] = *f.Rating
	}
	return query
}

func ratingsQuery(date string, meal *string) bson.M {
	query := bson.M{"date": date}
	if meal != nil {
		query["meal"] = *meal
	}
	return query
}

func dateRangeQuery(r models.DateRange) bson.M {
	if r.IsZero() {
		return bson.M{}
	}
	return bson.M{"date": bson.M{"$gte": r.Start, "$lte": r.End}}
}

func averageByMealPipeline(date string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": date}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$meal"},
			{Key: "average", Value: bson.M{"$avg": "$rating"}},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// Ratings returns the rating of every record stored for date, optionally
// narrowed to one meal.
func (r *mongoFeedbackRepo) Ratings(ctx context.Context, date string, meal *string) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"rating": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, ratingsQuery(date, meal), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Rating int `bson:"rating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}

	ratings := make([]int, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, row.Rating)
	}
	return ratings, nil
}

// Find lists records matching f, newest date first, without their _id.
func (r *mongoFeedbackRepo) Find(ctx context.Context, f models.FeedbackFilter) ([]models.MealFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, listQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.MealFeedback{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return records, nil
}

// AverageByMeal groups the records of one date by meal.
func (r *mongoFeedbackRepo) AverageByMeal(ctx context.Context, date string) ([]models.MealAverage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, averageByMealPipeline(date))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	averages := []models.MealAverage{}
	if err := cursor.All(ctx, &averages); err != nil {
		return nil, fmt.Errorf("failed to decode averages: %w", err)
	}
	return averages, nil
}
