// File: handlers/admin.go
package handlers

import (
	"net/http"

	"canteen/middleware"
	"canteen/services/feedback"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	FeedbackService feedback.FeedbackService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(fs feedback.FeedbackService) *AdminHandler {
	return &AdminHandler{FeedbackService: fs}
}

// DeleteFeedbackHandler removes feedback between ?start_date= and
// ?end_date= inclusive, or all feedback when both are omitted.
func (ah *AdminHandler) DeleteFeedbackHandler(c *gin.Context) {
	deleted, err := ah.FeedbackService.DeleteFeedback(
		c.Request.Context(),
		middleware.AdminKey(c),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		writeServiceError(c, err, "delete feedback")
		return
	}

	getLogger(c).Info("feedback purge", zap.Int64("deleted", deleted))
	c.JSON(http.StatusOK, gin.H{
		"message":       "Feedback deleted",
		"deleted_count": deleted,
	})
}
