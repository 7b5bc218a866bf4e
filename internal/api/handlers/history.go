package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tastecraft/tastecraft-api/internal/services"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler exposes the generation history endpoint
type HistoryHandler struct {
	svc *services.GenerationService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(svc *services.GenerationService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	if !h.svc.HistoryEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Generation history is disabled (DATABASE_URL not set)",
		})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxHistoryLimit {
			limit = n
		}
	}

	logs, err := h.svc.RecentLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": logs})
}
