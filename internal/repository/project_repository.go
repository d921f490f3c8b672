package repository

import (
	"context"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *domain.Project) error
	// GetByID retrieves a project by ID. Returns nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List retrieves projects ordered by creation time, newest first. A
	// non-empty tenantID narrows the result to that organization.
	List(ctx context.Context, tenantID string) ([]*domain.Project, error)
	// Update applies a sparse update to the project. A non-empty tenantGuard
	// restricts the write to rows owned by that organization; the guard is
	// evaluated by the statement itself, so ownership is re-checked at write
	// time. Returns false when no row matched.
	Update(ctx context.Context, id string, upd *ProjectUpdate, tenantGuard string) (bool, error)
	// StatsByTenant computes per-project task aggregates for one tenant in a
	// single query.
	StatsByTenant(ctx context.Context, tenantID string) ([]*domain.ProjectStats, error)
}
