package di

import (
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/config"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/database"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/handler"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/repository"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Tokens *auth.TokenManager
	Hasher *auth.PasswordHasher
	Policy *auth.Policy

	// Repositories
	OrgRepo     repository.OrganizationRepository
	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
	CommentRepo repository.CommentRepository

	// Services
	AuthService    service.AuthService
	ProjectService service.ProjectService
	TaskService    service.TaskService

	// Handlers
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	OrganizationHandler *handler.OrganizationHandler
	ProjectHandler      *handler.ProjectHandler
	TaskHandler         *handler.TaskHandler
}

// NewContainer wires the dependency graph from configuration and a database handle
func NewContainer(cfg *config.Config, db *database.PostgresDB) *Container {
	c := &Container{
		DB:     db,
		Tokens: auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenTTL),
		Hasher: auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Policy: auth.NewPolicy(),
	}

	pool := db.Pool()
	c.OrgRepo = repository.NewPostgresOrganizationRepository(pool)
	c.ProjectRepo = repository.NewPostgresProjectRepository(pool)
	c.TaskRepo = repository.NewPostgresTaskRepository(pool)
	c.CommentRepo = repository.NewPostgresCommentRepository(pool)

	c.AuthService = service.NewAuthService(c.OrgRepo, c.Policy, c.Tokens, c.Hasher, &service.AuthServiceConfig{
		SuperAdminPassword: cfg.Auth.SuperAdminPassword,
	})
	c.ProjectService = service.NewProjectService(c.ProjectRepo, c.TaskRepo, c.CommentRepo, c.Policy)
	c.TaskService = service.NewTaskService(c.TaskRepo, c.ProjectRepo, c.CommentRepo, c.Policy)

	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.OrganizationHandler = handler.NewOrganizationHandler(c.AuthService)
	c.ProjectHandler = handler.NewProjectHandler(c.ProjectService, c.TaskService)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService)

	return c
}

// RouterConfig builds the router wiring from the container
func (c *Container) RouterConfig() *handler.RouterConfig {
	return &handler.RouterConfig{
		Tokens:              c.Tokens,
		AuthHandler:         c.AuthHandler,
		OrganizationHandler: c.OrganizationHandler,
		ProjectHandler:      c.ProjectHandler,
		TaskHandler:         c.TaskHandler,
		HealthHandler:       c.HealthHandler,
	}
}
