package submission

import (
	submissionRepo "canteen/database/repository/submission"
	"canteen/models"
	"context"
	"strings"
)

type SubmissionService interface {
	Submit(ctx context.Context, s models.Submission) (string, error)
}

// DefaultSubmissionService is the production implementation.
type DefaultSubmissionService struct {
	Repo submissionRepo.SubmissionRepository
}

// Submit normalizes a contact-form entry and stores it.
func (s *DefaultSubmissionService) Submit(ctx context.Context, sub models.Submission) (string, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Reason = strings.TrimSpace(sub.Reason)
	if sub.Subject != nil {
		if trimmed := strings.TrimSpace(*sub.Subject); trimmed == "" {
			sub.Subject = nil
		} else {
			sub.Subject = &trimmed
		}
	}
	return s.Repo.Create(ctx, sub)
}
