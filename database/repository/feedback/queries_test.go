package feedbackRepo

import (
	"canteen/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListQuery(t *testing.T) {
	monday, lunch, zero, ten := "Monday", "lunch", 0, 10

	tests := []struct {
		name   string
		filter models.FeedbackFilter
		want   bson.M
	}{
		{"no filter", models.FeedbackFilter{}, bson.M{}},
		{"zero rating is a constraint", models.FeedbackFilter{Rating: &zero}, bson.M{"rating": 0}},
		{"max rating", models.FeedbackFilter{Rating: &ten}, bson.M{"rating": 10}},
		{"weekday only", models.FeedbackFilter{Weekday: &monday}, bson.M{"weekday": "Monday"}},
		{
			"all fields",
			models.FeedbackFilter{Weekday: &monday, Meal: &lunch, Rating: &zero},
			bson.M{"weekday": "Monday", "meal": "lunch", "rating": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listQuery(tt.filter))
		})
	}
}

func TestRatingsQuery(t *testing.T) {
	lunch := "lunch"
	assert.Equal(t, bson.M{"date": "2024-05-06"}, ratingsQuery("2024-05-06", nil))
	assert.Equal(t, bson.M{"date": "2024-05-06", "meal": "lunch"}, ratingsQuery("2024-05-06", &lunch))
}

func TestDateRangeQuery(t *testing.T) {
	// An unbounded range must match the whole collection.
	assert.Equal(t, bson.M{}, dateRangeQuery(models.DateRange{}))

	got := dateRangeQuery(models.DateRange{Start: "2024-01-01", End: "2024-01-31"})
	assert.Equal(t, bson.M{"date": bson.M{"$gte": "2024-01-01", "$lte": "2024-01-31"}}, got)
}

func TestAverageByMealPipeline(t *testing.T) {
	p := averageByMealPipeline("2024-05-06")
	if assert.Len(t, p, 3) {
		assert.Equal(t, "$match", p[0][0].Key)
		assert.Equal(t, bson.M{"date": "2024-05-06"}, p[0][0].Value)
		assert.Equal(t, "$group", p[1][0].Key)
		assert.Equal(t, "$sort", p[2][0].Key)
	}
}
