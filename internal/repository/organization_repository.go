package repository

import (
	"context"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetBySlug retrieves an organization by slug, including its credential
	// hash. Returns nil when the slug is unknown.
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// List retrieves all organizations ordered by creation time, newest
	// first. Credential hashes are not loaded.
	List(ctx context.Context) ([]*domain.Organization, error)
	// ExistsBySlug checks if an organization exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
