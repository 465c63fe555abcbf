package handlers

import (
	"errors"
	"net/http"

	"canteen/services/admin"
	"canteen/services/feedback"
	"canteen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service conditions to status codes. Anything
// unrecognized is a store failure and becomes a 500.
func writeServiceError(c *gin.Context, err error, action string) {
	var fe *feedback.FeedbackError
	switch {
	case errors.Is(err, admin.ErrForbidden):
		getLogger(c).Warn("admin key rejected", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusForbidden, gin.H{"detail": "forbidden"})
	case errors.As(err, &fe) && fe.Code == feedback.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"detail": fe.Message})
	case errors.As(err, &fe) && fe.Code == feedback.CodeBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"detail": fe.Message})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+action, err.Error())
	}
}
