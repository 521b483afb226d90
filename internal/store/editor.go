package store

import (
	"errors"
	"strings"
	"time"

	"mytodo/internal/model"
)

// Local validation errors; the gateway is never contacted when these fire.
var (
	// ErrEmptyTitle blocks saving a draft whose title trims to nothing.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrPastDeadline blocks moving a deadline into the past. A deadline
	// that was already in the past when editing started is left alone.
	ErrPastDeadline = errors.New("deadline must not be in the past")
)

// Draft holds in-progress edits to a todo, separate from the record itself.
type Draft struct {
	Title       string
	Description string
	Priority    string
	Status      string
	ProjectID   *int
	DeadlineAt  *time.Time
}

// EditState models the transient edit mode of a single todo: either Viewing
// the stored record, or Editing it with a draft buffer. The record is never
// mutated until Save merges the draft into a copy.
type EditState struct {
	todo  model.Todo
	draft *Draft
}

// Viewing wraps a record in its resting state.
func Viewing(t model.Todo) EditState {
	return EditState{todo: t}
}

// Todo returns the underlying record, untouched by any draft.
func (s EditState) Todo() model.Todo {
	return s.todo
}

// Editing reports whether a draft is open.
func (s EditState) Editing() bool {
	return s.draft != nil
}

// Edit opens a draft seeded from the record.
func (s EditState) Edit() EditState {
	d := Draft{
		Title:       s.todo.Title,
		Description: s.todo.Description,
		Priority:    s.todo.DisplayPriority(),
		Status:      s.todo.Status,
		ProjectID:   s.todo.ProjectID,
		DeadlineAt:  s.todo.DeadlineAt,
	}
	return EditState{todo: s.todo, draft: &d}
}

// Draft returns the open draft; the zero Draft when not editing.
func (s EditState) Draft() Draft {
	if s.draft == nil {
		return Draft{}
	}
	return *s.draft
}

// WithDraft replaces the draft buffer while editing; no-op when viewing.
func (s EditState) WithDraft(d Draft) EditState {
	if s.draft == nil {
		return s
	}
	return EditState{todo: s.todo, draft: &d}
}

// Save merges the draft into a copy of the record, producing the full
// replacement object sent to the gateway. The stored record is left alone;
// the caller swaps it only after confirmation. now anchors the past-deadline
// check to the current calendar date.
func (s EditState) Save(now time.Time) (model.Todo, error) {
	if s.draft == nil {
		return s.todo, nil
	}
	title := strings.TrimSpace(s.draft.Title)
	if title == "" {
		return model.Todo{}, ErrEmptyTitle
	}
	if d := s.draft.DeadlineAt; d != nil && deadlineChanged(d, s.todo.DeadlineAt) {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.Before(today) {
			return model.Todo{}, ErrPastDeadline
		}
	}
	merged := s.todo
	merged.Title = title
	merged.Description = strings.TrimSpace(s.draft.Description)
	merged.Priority = s.draft.Priority
	if s.draft.Status != "" {
		merged.Status = s.draft.Status
	}
	merged.ProjectID = s.draft.ProjectID
	merged.DeadlineAt = s.draft.DeadlineAt
	return merged, nil
}

func deadlineChanged(draft, original *time.Time) bool {
	if original == nil {
		return true
	}
	return !draft.Equal(*original)
}

// Cancel discards the draft and returns to viewing.
func (s EditState) Cancel() EditState {
	return EditState{todo: s.todo}
}
