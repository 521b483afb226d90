package model

import (
	"strings"
	"time"
)

// Todo status values. The gateway stores "cancelled" for abandoned items but
// the client views only distinguish pending from completed. "undone" is a
// legacy value some old records still carry; NormalizeStatus maps it to
// pending on read, and the server rejects it on write.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	// StatusUndone is the legacy alias for pending.
	StatusUndone = "undone"
)

// Todo priorities, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Todo struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"default:pending" json:"status"`
	Priority    string     `gorm:"default:low" json:"priority"`
	ProjectID   *int       `gorm:"index" json:"project_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	DeadlineAt  *time.Time `json:"deadline_at"`
	Order       *int       `gorm:"column:display_order" json:"order"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   *time.Time `json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// NormalizeStatus maps a raw status value to the canonical enum. The legacy
// "undone" value and anything unrecognized collapse to pending so predicates
// stay total.
func NormalizeStatus(s string) string {
	switch s {
	case StatusCompleted, StatusCancelled:
		return s
	default:
		return StatusPending
	}
}

// ValidStatus reports whether s is an accepted write-side status value.
// The legacy "undone" is deliberately not accepted.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Completed reports whether the todo counts as done for view purposes.
func (t Todo) Completed() bool {
	return t.Status == StatusCompleted
}

// DisplayTitle returns the title or a placeholder for malformed records.
func (t Todo) DisplayTitle() string {
	if strings.TrimSpace(t.Title) == "" {
		return "Untitled Task"
	}
	return t.Title
}

// DisplayPriority returns the priority, defaulting to low when absent.
func (t Todo) DisplayPriority() string {
	if !ValidPriority(t.Priority) {
		return PriorityLow
	}
	return t.Priority
}

// LoggedAt returns the timestamp used for Logbook ordering: completion time
// first, last update as a fallback, epoch when neither is known.
func (t Todo) LoggedAt() time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	if t.UpdatedAt != nil {
		return *t.UpdatedAt
	}
	return time.Time{}
}
