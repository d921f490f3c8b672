package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/middleware"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// OrganizationHandler handles organization management HTTP requests
type OrganizationHandler struct {
	authService service.AuthService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(authService service.AuthService) *OrganizationHandler {
	return &OrganizationHandler{authService: authService}
}

// List handles enumeration of all organizations
// GET /api/v1/organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	result, err := h.authService.ListOrganizations(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Create handles organization creation
// POST /api/v1/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.ValidateSlug(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_SLUG", msg))
		return
	}

	result, err := h.authService.CreateOrganization(c.Request.Context(), identity, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
