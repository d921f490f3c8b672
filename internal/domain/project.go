package domain

import "time"

// Project represents a project owned by exactly one organization.
// OrganizationID is immutable after creation.
type Project struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Project status labels. Status is a free-form column; these are the values
// the API itself assigns or aggregates on.
const (
	ProjectStatusActive = "ACTIVE"
	ProjectStatusDone   = "DONE"
)

// ProjectStats holds per-project task aggregates for one tenant
type ProjectStats struct {
	ProjectID      string  `json:"project_id"`
	TaskCount      int     `json:"task_count"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}
