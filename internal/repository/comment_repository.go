package repository

import (
	"context"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *domain.TaskComment) error
	// ListByTask retrieves a task's comments ordered by timestamp, oldest first
	ListByTask(ctx context.Context, taskID string) ([]*domain.TaskComment, error)
	// ListByTasks retrieves the comments of several tasks at once, in the
	// same order as ListByTask.
	ListByTasks(ctx context.Context, taskIDs []string) ([]*domain.TaskComment, error)
}
