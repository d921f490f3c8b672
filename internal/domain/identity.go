package domain

// Role identifies the kind of caller behind a request
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleOrganization Role = "ORGANIZATION"
)

// Identity is the caller identity reconstructed from a verified token.
// It is never persisted. A nil *Identity means the request is unauthenticated.
type Identity struct {
	Role Role `json:"role"`
	// OrganizationID is set only when Role is RoleOrganization and scopes
	// every operation the caller performs to that tenant.
	OrganizationID string `json:"organization_id,omitempty"`
}

// IsSuperAdmin reports whether the identity is a super admin
func (i *Identity) IsSuperAdmin() bool {
	return i != nil && i.Role == RoleSuperAdmin
}

// IsOrganization reports whether the identity is scoped to an organization
func (i *Identity) IsOrganization() bool {
	return i != nil && i.Role == RoleOrganization
}
