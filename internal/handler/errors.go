package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/service"
)

// writeServiceError translates the service error taxonomy into HTTP
// responses. Anything outside the taxonomy is an infrastructure failure.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid credentials"))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, response.Forbidden(""))
	case errors.Is(err, service.ErrOrganizationNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
	case errors.Is(err, service.ErrSlugAlreadyExists):
		c.JSON(http.StatusConflict, response.Conflict(err.Error()))
	case errors.Is(err, service.ErrProjectIDRequired),
		errors.Is(err, service.ErrNameRequired):
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
	}
}
