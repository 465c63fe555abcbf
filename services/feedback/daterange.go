package feedback

import (
	"canteen/models"
	"time"
)

// ParseDateRange validates the optional delete bounds. Both or neither must
// be given; each must be a real calendar date in YYYY-MM-DD.
func ParseDateRange(startDate, endDate string) (models.DateRange, error) {
	if startDate == "" && endDate == "" {
		return models.DateRange{}, nil
	}

	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if !isDate(d) {
			return models.DateRange{}, newBadRequest(msgInvalidDate)
		}
	}

	if startDate == "" || endDate == "" {
		return models.DateRange{}, newBadRequest(msgIncompleteRange)
	}
	if startDate > endDate {
		return models.DateRange{}, newBadRequest(msgInvertedRange)
	}
	return models.DateRange{Start: startDate, End: endDate}, nil
}

// isDate rejects anything time.Parse would accept but that is not in the
// exact stored form, such as a missing zero pad.
func isDate(s string) bool {
	t, err := time.Parse(models.DateLayout, s)
	return err == nil && t.Format(models.DateLayout) == s
}
