package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/database"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/response"
)

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live reports process liveness
// GET /healthz
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ok"}))
}

// Ready reports readiness, including database connectivity
// GET /readyz
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Error("SERVICE_UNAVAILABLE", err.Error()))
		return
	}
	stats := h.db.Stats()
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ready",
		"database": gin.H{
			"total_conns": stats.TotalConns(),
			"idle_conns":  stats.IdleConns(),
			"max_conns":   stats.MaxConns(),
		},
	}))
}
