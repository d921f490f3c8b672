package domain

import "time"

// Task represents a unit of work inside a project. ProjectID is mutable: a
// task may move between projects, but only within the same tenant for
// organization callers. A task's effective tenant is always its project's
// organization id, resolved at decision time.
type Task struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	AssigneeEmail string     `json:"assignee_email,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Task status labels
const (
	TaskStatusActive = "ACTIVE"
	TaskStatusDone   = "DONE"
)
