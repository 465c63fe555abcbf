package models

// FeedbackFilter narrows a feedback listing. A nil field imposes no
// constraint; a non-nil field must match exactly, including Rating == 0.
type FeedbackFilter struct {
	Weekday *string `form:"weekday"`
	Meal    *string `form:"meal"`
	Rating  *int    `form:"rating" binding:"omitempty,min=0,max=10"`
}

// IsEmpty reports whether no constraint is set.
func (f FeedbackFilter) IsEmpty() bool {
	return f.Weekday == nil && f.Meal == nil && f.Rating == nil
}

// Matches applies the filter to a single record.
func (f FeedbackFilter) Matches(fb MealFeedback) bool {
	if f.Weekday != nil && *f.Weekday != fb.Weekday {
		return false
	}
	if f.Meal != nil && *f.Meal != fb.Meal {
		return false
	}
	if f.Rating != nil && *f.Rating != fb.Rating {
		return false
	}
	return true
}

// DateRange is an inclusive range over MealFeedback.Date. The zero value is
// unbounded and selects every record.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether the range is unbounded.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Contains compares dates lexically, which is only sound for DateLayout.
func (r DateRange) Contains(date string) bool {
	if r.IsZero() {
		return true
	}
	return date >= r.Start && date <= r.End
}
