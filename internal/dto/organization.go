package dto

import (
	"regexp"
	"time"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// CreateOrganizationRequest represents the super-admin request to create a tenant
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Slug         string `json:"slug" binding:"required,min=2,max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateSlug validates slug format (lowercase alphanumeric and hyphens only)
func (r *CreateOrganizationRequest) ValidateSlug() (bool, string) {
	if !slugRegex.MatchString(r.Slug) {
		return false, "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return true, ""
}

// OrganizationResponse represents organization data in responses.
// The credential hash never leaves the service.
type OrganizationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// NewOrganizationResponse converts a domain.Organization to its response form
func NewOrganizationResponse(org *domain.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt.Format(time.RFC3339),
	}
}
