package model

// Project status values kept from the production enum.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectCancelled = "cancelled"
)

type Project struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Status      string `gorm:"default:active" json:"status"`

	Todos []Todo `gorm:"foreignKey:ProjectID" json:"-"`
}

// DisplayName returns the name or a placeholder for malformed records.
func (p Project) DisplayName() string {
	if p.Name == "" {
		return "Untitled Project"
	}
	return p.Name
}

// DisplayStatus returns the status, defaulting to active when absent.
func (p Project) DisplayStatus() string {
	if p.Status == "" {
		return ProjectActive
	}
	return p.Status
}
