package repository

import (
	"context"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *domain.Task) error
	// GetWithTenant retrieves a task by ID together with its effective
	// tenant, resolved by joining through the owning project. Returns a nil
	// task when the id is unknown.
	GetWithTenant(ctx context.Context, id string) (*domain.Task, string, error)
	// ListByProject retrieves a project's tasks ordered by creation time,
	// oldest first.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// ListByProjects retrieves the tasks of several projects at once, in the
	// same order as ListByProject.
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Task, error)
	// Update applies a sparse update to the task. A non-empty tenantGuard
	// restricts the write to tasks whose current project belongs to that
	// organization, and, when the update reassigns the task, additionally
	// requires the target project to belong to it. Both checks run inside
	// the statement, closing the gap between an earlier read and this write.
	// Returns false when no row matched.
	Update(ctx context.Context, id string, upd *TaskUpdate, tenantGuard string) (bool, error)
}
