package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

// fixed reference date for every date-sensitive test
var now = time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestByProject(t *testing.T) {
	pred := views.ByProject(5)

	assert.True(t, pred(model.Todo{ProjectID: intPtr(5)}))
	assert.False(t, pred(model.Todo{ProjectID: intPtr(6)}))
	assert.False(t, pred(model.Todo{ProjectID: nil}))
}

func TestByStatus(t *testing.T) {
	active := views.ByStatus(views.StatusActive)
	completed := views.ByStatus(views.StatusCompleted)
	all := views.ByStatus(views.StatusAll)

	pending := model.Todo{Status: model.StatusPending}
	done := model.Todo{Status: model.StatusCompleted}
	cancelled := model.Todo{Status: model.StatusCancelled}

	assert.True(t, active(pending))
	assert.True(t, active(cancelled))
	assert.False(t, active(done))

	assert.True(t, completed(done))
	assert.False(t, completed(pending))

	assert.True(t, all(pending))
	assert.True(t, all(done))
}

func TestByStatus_UnknownModeMatchesEverything(t *testing.T) {
	pred := views.ByStatus("bogus")

	assert.True(t, pred(model.Todo{Status: model.StatusPending}))
	assert.True(t, pred(model.Todo{Status: model.StatusCompleted}))
}

func TestDeadlineToday(t *testing.T) {
	pred := views.DeadlineToday(now)

	morning := time.Date(2024, 1, 10, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 1, 10, 23, 59, 59, 0, time.Local)
	tomorrow := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, pred(model.Todo{DeadlineAt: timePtr(morning)}))
	assert.True(t, pred(model.Todo{DeadlineAt: timePtr(night)}))
	assert.False(t, pred(model.Todo{DeadlineAt: timePtr(tomorrow)}))
	assert.False(t, pred(model.Todo{DeadlineAt: nil}))
}

func TestUpcomingWindow(t *testing.T) {
	pred := views.UpcomingWindow(now)

	today := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	tomorrow := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	lastDay := time.Date(2024, 1, 17, 23, 0, 0, 0, time.Local)
	dayEight := time.Date(2024, 1, 18, 0, 0, 0, 0, time.Local)

	// today is excluded, the window is strictly forward-looking
	assert.False(t, pred(model.Todo{DeadlineAt: timePtr(today)}))
	assert.True(t, pred(model.Todo{DeadlineAt: timePtr(tomorrow)}))
	assert.True(t, pred(model.Todo{DeadlineAt: timePtr(lastDay)}))
	assert.False(t, pred(model.Todo{DeadlineAt: timePtr(dayEight)}))
}

func TestUpcomingWindow_ExcludesCompleted(t *testing.T) {
	pred := views.UpcomingWindow(now)
	tomorrow := time.Date(2024, 1, 11, 9, 0, 0, 0, time.Local)

	assert.False(t, pred(model.Todo{
		Status:     model.StatusCompleted,
		DeadlineAt: timePtr(tomorrow),
	}))
}

func TestBySearch(t *testing.T) {
	pred := views.BySearch("  RepOrt ")

	assert.True(t, pred(model.Todo{Title: "Quarterly report"}))
	assert.True(t, pred(model.Todo{Title: "x", Description: "draft the REPORT today"}))
	assert.False(t, pred(model.Todo{Title: "Groceries"}))
}

func TestBySearch_EmptyTermMatchesEverything(t *testing.T) {
	pred := views.BySearch("   ")

	assert.True(t, pred(model.Todo{Title: "anything"}))
}

func TestInbox(t *testing.T) {
	recent := func(id int) bool { return id == 42 }
	pred := views.Inbox(recent)

	assert.True(t, pred(model.Todo{ID: 1, ProjectID: nil}))
	assert.False(t, pred(model.Todo{ID: 2, ProjectID: intPtr(3)}))
	// just created in this session: stays in the inbox even with a project
	assert.True(t, pred(model.Todo{ID: 42, ProjectID: intPtr(3)}))
}
