package auth

import "github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"

// Policy evaluates the per-operation decision table for every caller role.
//
// It is deliberately pure: decisions are made from the caller identity and
// the target's owning tenant, which the data-access layer resolves by
// following ownership edges (comment -> task -> project -> organization).
// The caller never gets to assert which tenant a row belongs to.
type Policy struct{}

// NewPolicy creates a Policy
func NewPolicy() *Policy {
	return &Policy{}
}

// CanListOrganizations allows only super admins to enumerate tenants
func (p *Policy) CanListOrganizations(identity *domain.Identity) bool {
	return identity.IsSuperAdmin()
}

// CanCreateOrganization allows only super admins to create tenants
func (p *Policy) CanCreateOrganization(identity *domain.Identity) bool {
	return identity.IsSuperAdmin()
}

// ProjectScope resolves the tenant filter for project reads. Super admins see
// every tenant (empty filter); organization callers are forced to their own
// tenant regardless of any caller-supplied filter. The second return is false
// for unauthenticated callers.
func (p *Policy) ProjectScope(identity *domain.Identity) (string, bool) {
	switch {
	case identity.IsSuperAdmin():
		return "", true
	case identity.IsOrganization():
		return identity.OrganizationID, true
	default:
		return "", false
	}
}

// CreateProjectTenant resolves the forced owning tenant for a new project.
// Only organization callers may create projects, and always for themselves.
func (p *Policy) CreateProjectTenant(identity *domain.Identity) (string, bool) {
	if identity.IsOrganization() {
		return identity.OrganizationID, true
	}
	return "", false
}

// CanAccessTenant decides item-level access to an entity owned by ownerTenant.
// Super admins may touch any tenant's rows; organization callers only their
// own. Used for project updates, task creation/updates (including the target
// project of a reassignment), and comments.
func (p *Policy) CanAccessTenant(identity *domain.Identity, ownerTenant string) bool {
	switch {
	case identity.IsSuperAdmin():
		return true
	case identity.IsOrganization():
		return identity.OrganizationID == ownerTenant
	default:
		return false
	}
}

// StatsTenant resolves the tenant whose aggregates the caller may read.
// Stats are organization-only; super admins are denied.
func (p *Policy) StatsTenant(identity *domain.Identity) (string, bool) {
	if identity.IsOrganization() {
		return identity.OrganizationID, true
	}
	return "", false
}
