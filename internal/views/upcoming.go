package views

import (
	"time"

	"mytodo/internal/model"
)

// Bucket holds one day of the Upcoming view. Day is midnight in the
// reference location.
type Bucket struct {
	Day   time.Time
	Todos []model.Todo
}

// Label renders the bucket header, e.g. "Friday, Jan 12".
func (b Bucket) Label() string {
	return b.Day.Format("Monday, Jan 2")
}

// Empty reports whether the bucket has no todos; empty buckets exist but are
// not rendered.
func (b Bucket) Empty() bool {
	return len(b.Todos) == 0
}

// Upcoming groups the incomplete todos due in the next seven days into one
// bucket per calendar day, today+1 through today+7 in chronological order.
// All seven buckets are returned even when empty. Within a bucket the input
// order is preserved.
func Upcoming(todos []model.Todo, now time.Time) []Bucket {
	buckets := make([]Bucket, 7)
	for i := range buckets {
		buckets[i].Day = midnight(now).AddDate(0, 0, i+1)
	}

	inWindow := filter(todos, UpcomingWindow(now))
	for _, t := range inWindow {
		day := midnight(t.DeadlineAt.In(now.Location()))
		for i := range buckets {
			if buckets[i].Day.Equal(day) {
				buckets[i].Todos = append(buckets[i].Todos, t)
				break
			}
		}
	}
	return buckets
}
