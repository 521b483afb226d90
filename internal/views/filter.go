package views

import (
	"strings"
	"time"

	"mytodo/internal/model"
)

// Predicate is a pure filter over a single todo. Predicates must be total:
// records with missing or malformed fields are matched or skipped, never a
// reason to fail.
type Predicate func(model.Todo) bool

// Status filter modes accepted by ByStatus and Options.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAll       = "all"
)

// ByProject matches todos assigned to the given project.
func ByProject(projectID int) Predicate {
	return func(t model.Todo) bool {
		return t.ProjectID != nil && *t.ProjectID == projectID
	}
}

// ByStatus matches by completion state. Unknown modes behave like StatusAll
// so the composer never fails on bad input.
func ByStatus(mode string) Predicate {
	return func(t model.Todo) bool {
		switch mode {
		case StatusCompleted:
			return t.Completed()
		case StatusActive:
			return !t.Completed()
		default:
			return true
		}
	}
}

// DeadlineToday matches todos whose deadline falls on the current calendar
// date. Time of day is ignored.
func DeadlineToday(now time.Time) Predicate {
	return func(t model.Todo) bool {
		if t.DeadlineAt == nil {
			return false
		}
		return sameDay(*t.DeadlineAt, now)
	}
}

// UpcomingWindow matches incomplete todos whose deadline falls within the
// seven days starting tomorrow, [today+1, today+7] by calendar date.
func UpcomingWindow(now time.Time) Predicate {
	first := midnight(now).AddDate(0, 0, 1)
	last := midnight(now).AddDate(0, 0, 7)
	return func(t model.Todo) bool {
		if t.DeadlineAt == nil || t.Completed() {
			return false
		}
		d := midnight(t.DeadlineAt.In(now.Location()))
		return !d.Before(first) && !d.After(last)
	}
}

// BySearch matches todos whose title or description contains term,
// case-insensitively. An empty or whitespace-only term matches everything.
func BySearch(term string) Predicate {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(t model.Todo) bool {
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term)
	}
}

// Inbox matches unassigned todos. recentlyCreated covers records that were
// just created locally and may briefly carry a project id the server has not
// acknowledged yet; pass nil when no such tracking exists.
func Inbox(recentlyCreated func(id int) bool) Predicate {
	return func(t model.Todo) bool {
		if t.ProjectID == nil {
			return true
		}
		return recentlyCreated != nil && recentlyCreated(t.ID)
	}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
