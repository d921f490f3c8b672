package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// AuthHandler handles login HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SuperAdminLogin handles super-admin login
// POST /api/v1/auth/super-admin/login
func (h *AuthHandler) SuperAdminLogin(c *gin.Context) {
	var req dto.SuperAdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.SuperAdminLogin(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// OrganizationLogin handles organization login by slug and password
// POST /api/v1/auth/organizations/login
func (h *AuthHandler) OrganizationLogin(c *gin.Context) {
	var req dto.OrganizationLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.OrganizationLogin(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
