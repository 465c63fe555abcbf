// File: models/feedback.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the stored form of MealFeedback.Date. Zero padding keeps
// lexical order equal to calendar order.
const DateLayout = "2006-01-02"

// AllMeals is echoed in an average when no meal scope was requested.
const AllMeals = "all"

// MealFeedback is one rating left for a meal. Weekday and Date are derived
// on the server from the insertion instant.
type MealFeedback struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Meal    string             `bson:"meal" json:"meal"`
	Rating  int                `bson:"rating" json:"rating"` // 0 to 10
	Message string             `bson:"message" json:"message"`
	Weekday string             `bson:"weekday" json:"weekday"` // e.g. "Monday"
	Date    string             `bson:"date" json:"date"`       // YYYY-MM-DD
}

// NewMealFeedback stamps weekday and date from the same instant.
func NewMealFeedback(meal string, rating int, message string, now time.Time) MealFeedback {
	return MealFeedback{
		Meal:    meal,
		Rating:  rating,
		Message: message,
		Weekday: now.Weekday().String(),
		Date:    now.Format(DateLayout),
	}
}

// AverageRating is the daily average, optionally scoped to one meal.
type AverageRating struct {
	AverageRating float64 `json:"average_rating"`
	Date          string  `json:"date"`
	Meal          string  `json:"meal"`
}

// MealAverage is one row of the per-meal breakdown.
type MealAverage struct {
	Meal          string  `bson:"_id" json:"meal"`
	AverageRating float64 `bson:"average" json:"average_rating"`
	Count         int     `bson:"count" json:"count"`
}

// DailyBreakdown groups today's averages by meal.
type DailyBreakdown struct {
	Date  string        `json:"date"`
	Meals []MealAverage `json:"meals"`
}
