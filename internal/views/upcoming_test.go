package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

func TestUpcoming_AlwaysSevenBuckets(t *testing.T) {
	buckets := views.Upcoming(nil, now)

	require.Len(t, buckets, 7)
	for i, b := range buckets {
		assert.Equal(t, now.AddDate(0, 0, i+1).Day(), b.Day.Day())
		assert.True(t, b.Empty())
	}
}

func TestUpcoming_GroupsByCalendarDay(t *testing.T) {
	todos := []model.Todo{
		{ID: 1, Status: model.StatusPending, DeadlineAt: timePtr(time.Date(2024, 1, 11, 9, 0, 0, 0, time.Local))},
		{ID: 2, Status: model.StatusPending, DeadlineAt: timePtr(time.Date(2024, 1, 11, 22, 0, 0, 0, time.Local))},
		{ID: 3, Status: model.StatusPending, DeadlineAt: timePtr(time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local))},
		// completed records never show in the forward window
		{ID: 4, Status: model.StatusCompleted, DeadlineAt: timePtr(time.Date(2024, 1, 12, 9, 0, 0, 0, time.Local))},
		// outside the window
		{ID: 5, Status: model.StatusPending, DeadlineAt: timePtr(time.Date(2024, 1, 20, 9, 0, 0, 0, time.Local))},
	}

	buckets := views.Upcoming(todos, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, []int{1, 2}, ids(buckets[0].Todos))
	assert.True(t, buckets[1].Empty())
	assert.Equal(t, []int{3}, ids(buckets[3].Todos))
	for _, b := range buckets[4:] {
		assert.True(t, b.Empty())
	}
}

func TestBucketLabel(t *testing.T) {
	b := views.Bucket{Day: time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)}

	assert.Equal(t, "Thursday, Jan 11", b.Label())
}
