package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/middleware"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// TaskHandler handles task and comment HTTP requests
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateOrUpdate handles task creation, sparse updates, and reassignment
// POST /api/v1/tasks
func (h *TaskHandler) CreateOrUpdate(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var input dto.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.taskService.CreateOrUpdate(c.Request.Context(), identity, &input)
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

// AddComment handles appending a comment to a task
// POST /api/v1/tasks/:id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Task ID is required"))
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.taskService.AddComment(c.Request.Context(), identity, taskID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
