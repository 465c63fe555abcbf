package handlers

import (
	"net/http"
	"strings"

	"canteen/models"
	"canteen/services/feedback"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler serves the public meal-feedback endpoints.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

type submitFeedbackInput struct {
	Meal    string `form:"meal" json:"meal" binding:"required"`
	Rating  *int   `form:"rating" json:"rating" binding:"required,min=0,max=10"`
	Message string `form:"message" json:"message" binding:"required"`
}

// SubmitFeedbackHandler stores one rating. Accepts form or JSON bodies.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	var input submitFeedbackInput
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	meal := strings.TrimSpace(input.Meal)
	message := strings.TrimSpace(input.Message)
	if meal == "" || message == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "meal and message must not be blank")
		return
	}

	id, err := h.Service.SubmitFeedback(c.Request.Context(), meal, *input.Rating, message)
	if err != nil {
		writeServiceError(c, err, "submit feedback")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully", "id": id})
}

// AverageRatingHandler returns today's average, optionally for ?meal=.
func (h *FeedbackHandler) AverageRatingHandler(c *gin.Context) {
	avg, err := h.Service.AverageRating(c.Request.Context(), optionalQuery(c, "meal"))
	if err != nil {
		writeServiceError(c, err, "compute average rating")
		return
	}
	c.JSON(http.StatusOK, avg)
}

// MealBreakdownHandler returns today's average for each meal.
func (h *FeedbackHandler) MealBreakdownHandler(c *gin.Context) {
	breakdown, err := h.Service.MealBreakdown(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "compute meal breakdown")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// ListFeedbackHandler lists feedback filtered by ?weekday=, ?meal= and
// ?rating=. No match is answered with a message, not an error.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	var filter models.FeedbackFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}
	// Blank values mean "not supplied". gin would otherwise bind
	// ?rating= as 0.
	filter.Weekday = optionalQuery(c, "weekday")
	filter.Meal = optionalQuery(c, "meal")
	if strings.TrimSpace(c.Query("rating")) == "" {
		filter.Rating = nil
	}

	records, err := h.Service.ListFeedback(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err, "fetch feedback")
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No matching results found"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// optionalQuery returns nil for a missing or blank query parameter.
func optionalQuery(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}
