package views

import (
	"sort"

	"mytodo/internal/model"
)

// Logbook returns the completed todos, most recently completed first.
// Records without a completion timestamp sort by last update, and records
// with neither sink to the end (their log time is the epoch). The sort is
// stable so equally-dated records keep their server order.
func Logbook(todos []model.Todo) []model.Todo {
	done := filter(todos, ByStatus(StatusCompleted))
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].LoggedAt().After(done[j].LoggedAt())
	})
	return done
}
