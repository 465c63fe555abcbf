package feedback

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound   = "notFound"
	CodeBadRequest = "badRequest"
)

// FeedbackError is a caller-facing condition, as opposed to a store failure.
type FeedbackError struct {
	Code    string
	Message string
}

func (e *FeedbackError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newNotFound(msg string) error {
	return &FeedbackError{Code: CodeNotFound, Message: msg}
}

func newBadRequest(msg string) error {
	return &FeedbackError{Code: CodeBadRequest, Message: msg}
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsBadRequest reports whether err carries CodeBadRequest.
func IsBadRequest(err error) bool {
	return hasCode(err, CodeBadRequest)
}

func hasCode(err error, code string) bool {
	var fe *FeedbackError
	return errors.As(err, &fe) && fe.Code == code
}

const (
	msgNoRatingsToday  = "no ratings found for today"
	msgInvalidDate     = "invalid date format, use YYYY-MM-DD"
	msgIncompleteRange = "start_date and end_date must be supplied together"
	msgInvertedRange   = "start_date must not be after end_date"
)
