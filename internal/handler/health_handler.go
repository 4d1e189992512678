package handler

import (
	"net/http"

	"bents-gateway/internal/transport/httpdto"
	"bents-gateway/pkg/database"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db database.Pinger
}

func NewHealthHandler(db database.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("pong"))
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("unhealthy"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageResponse("healthy"))
}
