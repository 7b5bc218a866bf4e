package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tastecraft/tastecraft-api/internal/models"
	"github.com/tastecraft/tastecraft-api/internal/services"
)

// GenerationHandler exposes the name and menu generation endpoints
type GenerationHandler struct {
	svc *services.GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(svc *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// GenerateRequest is the request body for the names and menu endpoints
type GenerateRequest struct {
	Country string `json:"country" binding:"required"`
	Style   string `json:"style" binding:"required"`
	// Optional model override (e.g., gemini-2.5-flash, gpt-4o-mini)
	Model string `json:"model"`
	// Optional provider override (gemini, openai) - defaults by model name
	Provider string `json:"provider"`
}

func (r *GenerateRequest) toModel() models.GenerationRequest {
	return models.GenerationRequest{
		Country:  strings.TrimSpace(r.Country),
		Style:    strings.TrimSpace(r.Style),
		Model:    r.Model,
		Provider: r.Provider,
	}
}

func (h *GenerationHandler) bindRequest(c *gin.Context) (*GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	if req.Model != "" && !isAllowedModel(req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid model. Allowed: %s", strings.Join(AllowedModels, ", ")),
		})
		return nil, false
	}

	return &req, true
}

// Names handles POST /api/v1/names
func (h *GenerationHandler) Names(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	suggestions, err := h.svc.GenerateNames(c.Request.Context(), req.toModel())
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id":  c.GetString("request_id"),
		"suggestions": suggestions,
	})
}

// Menu handles POST /api/v1/menu
func (h *GenerationHandler) Menu(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	menu, err := h.svc.GenerateMenu(c.Request.Context(), req.toModel())
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"menu":       menu,
	})
}

// writeGenerationError maps service errors to HTTP responses. Upstream
// and empty-response failures come back as 502 with the failure kind so
// the UI can offer a retry; partial parse results never reach this path.
func (h *GenerationHandler) writeGenerationError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if genErr, ok := services.AsGenerationError(err); ok {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      "Generation failed, please try again",
			"error_kind": string(genErr.Kind),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ExportRequest is the request body for the export endpoint. It carries
// previously generated results back from the client; no new upstream
// call is made.
type ExportRequest struct {
	Country        string                  `json:"country" binding:"required"`
	Style          string                  `json:"style" binding:"required"`
	RestaurantName string                  `json:"restaurant_name"`
	Suggestions    []models.NameSuggestion `json:"suggestions"`
	Menu           *models.MenuResult      `json:"menu"`
}

// Export handles POST /api/v1/export and returns a plain-text file
func (h *GenerationHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var content, filename string
	switch {
	case req.Menu != nil && req.RestaurantName != "":
		content = services.RenderConceptText(req.RestaurantName, req.Country, req.Style, req.Menu)
		filename = strings.ReplaceAll(req.RestaurantName, " ", "_") + "_menu.txt"
	case req.Menu != nil:
		content = services.RenderMenuText(req.Country, req.Style, req.Menu)
		filename = "menu.txt"
	case len(req.Suggestions) > 0:
		content = services.RenderNamesText(req.Country, req.Style, req.Suggestions)
		filename = "restaurant_names.txt"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// Options handles GET /api/v1/options and returns the form choice lists
func (h *GenerationHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": PopularCountries,
		"styles":    RestaurantStyles,
		"models":    AllowedModels,
	})
}
