package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/middleware"
)

// RouterConfig holds everything the router needs
type RouterConfig struct {
	Tokens              *auth.TokenManager
	AuthHandler         *AuthHandler
	OrganizationHandler *OrganizationHandler
	ProjectHandler      *ProjectHandler
	TaskHandler         *TaskHandler
	HealthHandler       *HealthHandler
}

// NewRouter wires all routes. Every /api/v1 route runs behind the identity
// middleware, which attaches the caller identity without rejecting anonymous
// requests; role decisions happen in the services.
func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", cfg.HealthHandler.Live)
	router.GET("/readyz", cfg.HealthHandler.Ready)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(cfg.Tokens))
	v1.Use(middleware.RequestLogger(&middleware.RequestLoggerConfig{}))
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/super-admin/login", cfg.AuthHandler.SuperAdminLogin)
			authGroup.POST("/organizations/login", cfg.AuthHandler.OrganizationLogin)
		}

		orgs := v1.Group("/organizations")
		{
			orgs.GET("", cfg.OrganizationHandler.List)
			orgs.POST("", cfg.OrganizationHandler.Create)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", cfg.ProjectHandler.List)
			projects.POST("", cfg.ProjectHandler.CreateOrUpdate)
			projects.GET("/stats", cfg.ProjectHandler.Stats)
			projects.GET("/:id/tasks", cfg.ProjectHandler.ListTasks)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", cfg.TaskHandler.CreateOrUpdate)
			tasks.POST("/:id/comments", cfg.TaskHandler.AddComment)
		}
	}

	return router
}
