package dto

import (
	"time"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// TaskInput is the create-or-update payload for tasks. A missing ID means
// create (project_id is then required); a present ID means update, where only
// non-nil fields participate. A non-nil ProjectID on update reassigns the
// task to another project, subject to the tenant policy.
type TaskInput struct {
	ID            string     `json:"id"`
	ProjectID     *string    `json:"project_id"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Status        *string    `json:"status"`
	AssigneeEmail *string    `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date"`
}

// IsUpdate reports whether the input targets an existing task
func (in *TaskInput) IsUpdate() bool {
	return in.ID != ""
}

// AddCommentRequest is the payload for commenting on a task
type AddCommentRequest struct {
	Content     string `json:"content" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email"`
}

// TaskResponse represents a task with its ordered comment list
type TaskResponse struct {
	ID            string               `json:"id"`
	ProjectID     string               `json:"project_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	Status        string               `json:"status"`
	AssigneeEmail string               `json:"assignee_email,omitempty"`
	DueDate       *time.Time           `json:"due_date,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	Comments      []domain.TaskComment `json:"comments"`
}

// NewTaskResponse converts a domain.Task plus its loaded comments into a response
func NewTaskResponse(t *domain.Task, comments []domain.TaskComment) *TaskResponse {
	if comments == nil {
		comments = []domain.TaskComment{}
	}
	return &TaskResponse{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		AssigneeEmail: t.AssigneeEmail,
		DueDate:       t.DueDate,
		CreatedAt:     t.CreatedAt,
		Comments:      comments,
	}
}
