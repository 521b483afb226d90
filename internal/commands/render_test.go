package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

var renderNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

func TestRenderBuckets_SkipsEmptyDays(t *testing.T) {
	deadline := time.Date(2024, 1, 12, 18, 0, 0, 0, time.Local)
	buckets := views.Upcoming([]model.Todo{
		{ID: 1, Title: "Pay rent", Status: model.StatusPending, DeadlineAt: &deadline},
	}, renderNow)

	out := renderBuckets(buckets)

	assert.Contains(t, out, "Friday, Jan 12")
	assert.Contains(t, out, "Pay rent")
	// days without todos do not appear at all
	assert.NotContains(t, out, "Thursday, Jan 11")
	assert.NotContains(t, out, "Saturday, Jan 13")
}

func TestRenderBuckets_NothingUpcoming(t *testing.T) {
	out := renderBuckets(views.Upcoming(nil, renderNow))

	// just the view title, no day headers
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Upcoming")
}
