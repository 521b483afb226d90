package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

func TestLogbook_CompletedOnlyMostRecentFirst(t *testing.T) {
	day := func(d int) *time.Time {
		return timePtr(time.Date(2024, 1, d, 12, 0, 0, 0, time.Local))
	}
	todos := []model.Todo{
		{ID: 1, Status: model.StatusCompleted, CompletedAt: day(3)},
		{ID: 2, Status: model.StatusPending},
		{ID: 3, Status: model.StatusCompleted, CompletedAt: day(8)},
		{ID: 4, Status: model.StatusCancelled},
		{ID: 5, Status: model.StatusCompleted, CompletedAt: day(5)},
	}

	assert.Equal(t, []int{3, 5, 1}, ids(views.Logbook(todos)))
}

func TestLogbook_FallsBackToUpdatedAt(t *testing.T) {
	todos := []model.Todo{
		{ID: 1, Status: model.StatusCompleted, UpdatedAt: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local))},
		{ID: 2, Status: model.StatusCompleted, CompletedAt: timePtr(time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local))},
	}

	assert.Equal(t, []int{2, 1}, ids(views.Logbook(todos)))
}

func TestLogbook_NoTimestampsKeepsInputOrder(t *testing.T) {
	todos := []model.Todo{
		{ID: 1, Status: model.StatusCompleted},
		{ID: 2, Status: model.StatusCompleted},
		{ID: 3, Status: model.StatusCompleted},
	}

	// stable sort: records without any timestamp keep their relative order
	assert.Equal(t, []int{1, 2, 3}, ids(views.Logbook(todos)))
}
