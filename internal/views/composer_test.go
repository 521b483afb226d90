package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

func sampleTodos() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Write report", Status: model.StatusPending, ProjectID: intPtr(1)},
		{ID: 2, Title: "Review report", Status: model.StatusCompleted, ProjectID: intPtr(1)},
		{ID: 3, Title: "Buy groceries", Status: model.StatusPending},
		{ID: 4, Title: "Call dentist", Status: model.StatusCancelled, ProjectID: intPtr(2)},
		{ID: 5, Title: "Ship release", Status: model.StatusCompleted, ProjectID: intPtr(1)},
	}
}

func ids(todos []model.Todo) []int {
	out := make([]int, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func TestCompose_PreservesOrder(t *testing.T) {
	v := views.Compose(sampleTodos(), views.Options{Status: views.StatusAll})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(v.Todos))
}

func TestCompose_MetricsCountedBeforeStatusFilter(t *testing.T) {
	project := 1
	v := views.Compose(sampleTodos(), views.Options{
		Project: &project,
		Status:  views.StatusActive,
	})

	// only the pending todo survives the status filter
	assert.Equal(t, []int{1}, ids(v.Todos))
	// but the metrics still describe the whole project
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, 2, v.CompletedCount)
	assert.Equal(t, 67, v.CompletionRate())
	assert.Equal(t, 1, v.OpenCount())
}

func TestCompose_SearchAppliedLast(t *testing.T) {
	v := views.Compose(sampleTodos(), views.Options{
		Status: views.StatusActive,
		Search: "report",
	})

	// "Review report" is completed, so it never reaches the search stage
	assert.Equal(t, []int{1}, ids(v.Todos))
}

func TestCompose_SearchDoesNotChangeMetrics(t *testing.T) {
	project := 1
	with := views.Compose(sampleTodos(), views.Options{Project: &project, Search: "zzz"})
	without := views.Compose(sampleTodos(), views.Options{Project: &project})

	assert.Empty(t, with.Todos)
	assert.Equal(t, without.TotalCount, with.TotalCount)
	assert.Equal(t, without.CompletedCount, with.CompletedCount)
}

func TestCompose_CustomPredicate(t *testing.T) {
	v := views.Compose(sampleTodos(), views.Options{
		Status: views.StatusAll,
		Custom: func(todo model.Todo) bool { return todo.ID%2 == 1 },
	})

	assert.Equal(t, []int{1, 3, 5}, ids(v.Todos))
}

func TestCompletionRate_EmptyView(t *testing.T) {
	v := views.Compose(nil, views.Options{})

	assert.Equal(t, 0, v.CompletionRate())
	assert.Empty(t, v.Todos)
}

func TestCompletionRate_Rounds(t *testing.T) {
	v := views.View{CompletedCount: 1, TotalCount: 3}
	assert.Equal(t, 33, v.CompletionRate())

	v = views.View{CompletedCount: 2, TotalCount: 3}
	assert.Equal(t, 67, v.CompletionRate())
}
