package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tastecraft/tastecraft-api/internal/config"
)

// HealthHandler reports service health
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	providers := gin.H{
		"gemini": h.cfg.GeminiAPIKey != "",
		"openai": h.cfg.OpenAIAPIKey != "",
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"providers": providers,
		"history":   h.cfg.HistoryEnabled(),
	})
}
