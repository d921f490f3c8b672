package service

import "errors"

// Error taxonomy shared by all services. Handlers translate these with
// errors.Is; anything not matching is an infrastructure failure.
var (
	// ErrUnauthenticated covers absent, malformed, and expired tokens alike;
	// callers are never told which.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized means the identity is valid but its role or tenant
	// scope does not cover the target. Distinct from not-found.
	ErrUnauthorized = errors.New("not authorized for this resource")

	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")

	ErrSlugAlreadyExists  = errors.New("organization with this slug already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProjectIDRequired is returned when a task is created without a
	// project. An empty update set is NOT an input error; it is a no-op.
	ErrProjectIDRequired = errors.New("project_id is required for a new task")
	ErrNameRequired      = errors.New("name is required for a new project")
)
