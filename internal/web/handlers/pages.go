package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apihandlers "github.com/tastecraft/tastecraft-api/internal/api/handlers"
)

// WebHandler renders the browser UI
type WebHandler struct{}

// NewWebHandler creates a new web handler
func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// Home renders the generator form page
func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Countries": apihandlers.PopularCountries,
		"Styles":    apihandlers.RestaurantStyles,
	})
}
