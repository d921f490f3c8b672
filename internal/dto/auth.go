package dto

// SuperAdminLoginRequest represents the super-admin login payload
type SuperAdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// OrganizationLoginRequest represents the organization login payload.
// Organizations authenticate by slug, not by id.
type OrganizationLoginRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token and the role it encodes
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
