package handlers

import (
	"net/http"

	"canteen/models"
	"canteen/services/submission"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the contact form.
type SubmissionHandler struct {
	Service submission.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(svc submission.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: svc}
}

type submitFormInput struct {
	Name    string  `form:"name" json:"name" binding:"required"`
	Email   string  `form:"email" json:"email" binding:"required,email"`
	Subject *string `form:"subject" json:"subject"`
	Reason  string  `form:"reason" json:"reason" binding:"required"`
}

// SubmitFormHandler stores a contact-form submission.
func (h *SubmissionHandler) SubmitFormHandler(c *gin.Context) {
	var input submitFormInput
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Service.Submit(c.Request.Context(), models.Submission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Reason:  input.Reason,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save submission", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission successful", "id": id})
}
