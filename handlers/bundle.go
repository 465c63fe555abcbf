// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Contact form
	SubmitFormHandler gin.HandlerFunc

	// Meal feedback
	SubmitFeedbackHandler gin.HandlerFunc
	AverageRatingHandler  gin.HandlerFunc
	MealBreakdownHandler  gin.HandlerFunc
	ListFeedbackHandler   gin.HandlerFunc

	// Admin
	AdminHandler *AdminHandler

	// Health
	HealthHandler gin.HandlerFunc
}
