package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mytodo/internal/model"
	"mytodo/internal/store"
)

func TestCollection_InsertPrepends(t *testing.T) {
	col := store.NewCollection()
	col.Load([]model.Todo{{ID: 1}, {ID: 2}})

	inserted := col.Insert(model.Todo{ID: 3})

	assert.True(t, inserted)
	todos := col.Todos()
	require.Len(t, todos, 3)
	assert.Equal(t, 3, todos[0].ID)
}

func TestCollection_InsertIsIdempotent(t *testing.T) {
	col := store.NewCollection()
	col.Insert(model.Todo{ID: 7, Title: "first"})

	inserted := col.Insert(model.Todo{ID: 7, Title: "second"})

	assert.False(t, inserted)
	assert.Equal(t, 1, col.Len())
	got, ok := col.Get(7)
	require.True(t, ok)
	assert.Equal(t, "first", got.Title)
}

func TestCollection_ReplaceUnknownIDIsNoOp(t *testing.T) {
	col := store.NewCollection()
	col.Load([]model.Todo{{ID: 1}})

	replaced := col.Replace(model.Todo{ID: 99, Title: "ghost"})

	assert.False(t, replaced)
	assert.Equal(t, 1, col.Len())
	_, ok := col.Get(99)
	assert.False(t, ok)
}

func TestCollection_ReplaceKeepsPosition(t *testing.T) {
	col := store.NewCollection()
	col.Load([]model.Todo{{ID: 1}, {ID: 2}, {ID: 3}})

	col.Replace(model.Todo{ID: 2, Title: "edited"})

	todos := col.Todos()
	assert.Equal(t, []int{1, 2, 3}, []int{todos[0].ID, todos[1].ID, todos[2].ID})
	assert.Equal(t, "edited", todos[1].Title)
}

func TestCollection_Remove(t *testing.T) {
	col := store.NewCollection()
	col.Load([]model.Todo{{ID: 1}, {ID: 2}})

	assert.True(t, col.Remove(1))
	assert.False(t, col.Remove(1))
	assert.Equal(t, 1, col.Len())
}

func TestCollection_LoadClearsRecentlyCreated(t *testing.T) {
	col := store.NewCollection()
	col.Insert(model.Todo{ID: 5})
	require.True(t, col.RecentlyCreated(5))

	col.Load([]model.Todo{{ID: 5}})

	assert.False(t, col.RecentlyCreated(5))
}

func TestCollection_SnapshotIsIndependent(t *testing.T) {
	col := store.NewCollection()
	col.Load([]model.Todo{{ID: 1, Title: "before"}})

	snapshot := col.Snapshot()
	col.Replace(model.Todo{ID: 1, Title: "after"})

	require.Len(t, snapshot, 1)
	assert.Equal(t, "before", snapshot[0].Title)
}
