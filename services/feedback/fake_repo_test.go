package feedback

import (
	"canteen/models"
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryRepo is an in-memory FeedbackRepository with the same filter
// semantics as the Mongo queries.
type memoryRepo struct {
	mu      sync.Mutex
	records []models.MealFeedback
	err     error
	deletes int
}

var errStoreDown = errors.New("server selection error: no reachable servers")

func (m *memoryRepo) Create(_ context.Context, fb models.MealFeedback) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	fb.ID = primitive.NewObjectID()
	m.records = append(m.records, fb)
	return fb.ID.Hex(), nil
}

func (m *memoryRepo) Ratings(_ context.Context, date string, meal *string) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []int
	for _, r := range m.records {
		if r.Date == date && (meal == nil || *meal == r.Meal) {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}

func (m *memoryRepo) Find(_ context.Context, f models.FeedbackFilter) ([]models.MealFeedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.MealFeedback{}
	for _, r := range m.records {
		if f.Matches(r) {
			r.ID = primitive.NilObjectID
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *memoryRepo) DeleteRange(_ context.Context, dr models.DateRange) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.err != nil {
		return 0, m.err
	}
	kept := m.records[:0]
	var deleted int64
	for _, r := range m.records {
		if dr.Contains(r.Date) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return deleted, nil
}

func (m *memoryRepo) AverageByMeal(_ context.Context, date string) ([]models.MealAverage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	sums := map[string][2]int{}
	for _, r := range m.records {
		if r.Date != date {
			continue
		}
		s := sums[r.Meal]
		sums[r.Meal] = [2]int{s[0] + r.Rating, s[1] + 1}
	}
	out := []models.MealAverage{}
	for meal, s := range sums {
		out = append(out, models.MealAverage{Meal: meal, AverageRating: float64(s[0]) / float64(s[1]), Count: s[1]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Meal < out[j].Meal })
	return out, nil
}

func (m *memoryRepo) EnsureIndexes(context.Context) error { return nil }

func (m *memoryRepo) seed(records ...models.MealFeedback) {
	m.records = append(m.records, records...)
}

func (m *memoryRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
