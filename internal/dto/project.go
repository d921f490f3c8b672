package dto

import (
	"time"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// ProjectInput is the create-or-update payload for projects. A missing ID
// means create; a present ID means update. Pointer fields distinguish
// "absent" (nil, leave untouched) from "present" (apply, even when the value
// is empty).
type ProjectInput struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

// IsUpdate reports whether the input targets an existing project
func (in *ProjectInput) IsUpdate() bool {
	return in.ID != ""
}

// ProjectResponse represents a project with its computed relations
type ProjectResponse struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Status         string         `json:"status"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	TaskCount      int            `json:"task_count"`
	CompletedTasks int            `json:"completed_tasks"`
	Tasks          []TaskResponse `json:"tasks"`
}

// NewProjectResponse converts a domain.Project plus its loaded tasks into a
// response. Counts are derived from the task list itself so the response is
// internally consistent.
func NewProjectResponse(p *domain.Project, tasks []TaskResponse) *ProjectResponse {
	completed := 0
	for i := range tasks {
		if tasks[i].Status == domain.TaskStatusDone {
			completed++
		}
	}
	if tasks == nil {
		tasks = []TaskResponse{}
	}
	return &ProjectResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		DueDate:        p.DueDate,
		CreatedAt:      p.CreatedAt,
		TaskCount:      len(tasks),
		CompletedTasks: completed,
		Tasks:          tasks,
	}
}
