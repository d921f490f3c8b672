package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/middleware"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
	taskService    service.TaskService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService, taskService service.TaskService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, taskService: taskService}
}

// List handles project listing, scoped to the caller's tenant
// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	result, err := h.projectService.List(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// CreateOrUpdate handles project creation and sparse updates
// POST /api/v1/projects
func (h *ProjectHandler) CreateOrUpdate(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var input dto.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.projectService.CreateOrUpdate(c.Request.Context(), identity, &input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if !input.IsUpdate() {
		status = http.StatusCreated
	}
	c.JSON(status, response.Success(result))
}

// Stats handles per-project aggregate retrieval for the caller's tenant
// GET /api/v1/projects/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	result, err := h.projectService.Stats(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListTasks handles task listing for one project
// GET /api/v1/projects/:id/tasks
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Project ID is required"))
		return
	}

	result, err := h.taskService.ListByProject(c.Request.Context(), identity, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
