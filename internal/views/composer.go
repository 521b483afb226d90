package views

import (
	"math"

	"mytodo/internal/model"
)

// Options selects what a composed view shows. Project narrows to one
// project's todos, Status is one of the mode constants, Custom is an
// optional extra predicate (Today, Upcoming and Inbox are built this way)
// and Search is a free-text term applied last.
type Options struct {
	Project *int
	Status  string
	Custom  Predicate
	Search  string
}

// View is a derived, ordered slice of todos plus the completion metrics of
// its base set. The base set is the collection after project filtering but
// before status, custom and search filtering; counting there keeps the
// progress numbers stable while the user flips status tabs or types a query.
type View struct {
	Todos          []model.Todo
	CompletedCount int
	TotalCount     int
}

// CompletionRate is the rounded percentage of completed todos in the base
// set, 0 for an empty set.
func (v View) CompletionRate() int {
	if v.TotalCount == 0 {
		return 0
	}
	return int(math.Round(float64(v.CompletedCount) / float64(v.TotalCount) * 100))
}

// OpenCount is the number of not-yet-completed todos in the base set.
func (v View) OpenCount() int {
	return v.TotalCount - v.CompletedCount
}

// Compose runs the fixed filter pipeline: project, status, custom predicate,
// search. Input order is preserved; no stage re-sorts. Compose never fails,
// malformed records simply fall through whichever predicates still match.
func Compose(todos []model.Todo, opts Options) View {
	base := todos
	if opts.Project != nil {
		base = filter(todos, ByProject(*opts.Project))
	}

	v := View{TotalCount: len(base)}
	for _, t := range base {
		if t.Completed() {
			v.CompletedCount++
		}
	}

	out := filter(base, ByStatus(opts.Status))
	if opts.Custom != nil {
		out = filter(out, opts.Custom)
	}
	v.Todos = filter(out, BySearch(opts.Search))
	return v
}

func filter(todos []model.Todo, keep Predicate) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
