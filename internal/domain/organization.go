package domain

import "time"

// Organization represents a tenant in the multi-tenant system. Every project,
// task, and comment belongs transitively to exactly one organization.
type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
