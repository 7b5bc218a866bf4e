package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastecraft/tastecraft-api/internal/config"
	"github.com/tastecraft/tastecraft-api/internal/llm"
	"github.com/tastecraft/tastecraft-api/internal/services"
)

// stubProvider returns a canned reply so handler tests run without
// network access
type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Generate(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.GenerationResponse{Text: p.text}, nil
}

func (p *stubProvider) Name() string { return "stub" }

type stubSource struct {
	provider llm.Provider
	err      error
}

func (s *stubSource) GetProvider(_ context.Context, _, _ string) (llm.Provider, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.provider, nil
}

const namesReply = `1. Bistro Luna
Where moonlight meets flavor
2. Casa Verde
Fresh from the garden
3. The Gilded Fork
Dining, elevated
4. Saffron & Sage
A spice-lover's home
5. Ember Table
Fire-kissed comfort food`

const menuReply = `Starters
Bruschetta - grilled bread with tomatoes
Arancini - fried risotto balls

Main Courses
Osso Buco - braised veal shanks

Desserts
Tiramisu - coffee-soaked layers

Beverages
Limoncello Spritz - lemon liqueur and prosecco`

func setupGenerationTestRouter(source services.ProviderSource) *gin.Engine {
	cfg := &config.Config{
		Environment:     "test",
		DefaultModel:    "gemini-2.5-flash",
		CacheTTLSeconds: 60,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	svc := services.NewGenerationService(cfg, source, nil, nil)
	handler := NewGenerationHandler(svc)
	router.GET("/api/v1/options", handler.Options)
	router.POST("/api/v1/names", handler.Names)
	router.POST("/api/v1/menu", handler.Menu)
	router.POST("/api/v1/export", handler.Export)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNamesEndpoint_Success(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: namesReply}})

	w := postJSON(t, router, "/api/v1/names", gin.H{"country": "Italy", "style": "Fine Dining"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []struct {
			Name    string `json:"name"`
			Tagline string `json:"tagline"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 5)
	assert.Equal(t, "Bistro Luna", resp.Suggestions[0].Name)
	assert.Equal(t, "Where moonlight meets flavor", resp.Suggestions[0].Tagline)
}

func TestNamesEndpoint_MissingFields(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: namesReply}})

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing_country", gin.H{"style": "Casual"}},
		{"missing_style", gin.H{"country": "Japan"}},
		{"empty_body", gin.H{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/names", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestNamesEndpoint_InvalidModel(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: namesReply}})

	w := postJSON(t, router, "/api/v1/names", gin.H{
		"country": "Italy",
		"style":   "Casual",
		"model":   "not-a-model",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid model")
}

func TestNamesEndpoint_UpstreamFailure(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{
		provider: &stubProvider{err: errors.New("rate limited")},
	})

	w := postJSON(t, router, "/api/v1/names", gin.H{"country": "Italy", "style": "Casual"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(services.FailureUpstreamCall), resp["error_kind"])
}

func TestNamesEndpoint_EmptyResponse(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: "   \n  "}})

	w := postJSON(t, router, "/api/v1/names", gin.H{"country": "Italy", "style": "Casual"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(services.FailureEmptyResponse), resp["error_kind"])
}

func TestMenuEndpoint_Success(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: menuReply}})

	w := postJSON(t, router, "/api/v1/menu", gin.H{"country": "Italy", "style": "Rustic"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Menu struct {
			Sections []struct {
				Name  string   `json:"name"`
				Items []string `json:"items"`
			} `json:"sections"`
		} `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Menu.Sections, 4)
	assert.Equal(t, "Starters", resp.Menu.Sections[0].Name)
	assert.Len(t, resp.Menu.Sections[0].Items, 2)
	assert.Equal(t, "Beverages", resp.Menu.Sections[3].Name)
}

func TestExportEndpoint_Concept(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: menuReply}})

	w := postJSON(t, router, "/api/v1/export", gin.H{
		"country":         "Italy",
		"style":           "Rustic",
		"restaurant_name": "Bistro Luna",
		"menu": gin.H{
			"sections": []gin.H{
				{"name": "Starters", "items": []string{"Bruschetta - grilled bread"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "Bistro_Luna_menu.txt")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Restaurant: Bistro Luna"))
	assert.Contains(t, body, "Bruschetta - grilled bread")
}

func TestExportEndpoint_NothingToExport(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: menuReply}})

	w := postJSON(t, router, "/api/v1/export", gin.H{"country": "Italy", "style": "Rustic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptionsEndpoint(t *testing.T) {
	router := setupGenerationTestRouter(&stubSource{provider: &stubProvider{text: namesReply}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Countries []string `json:"countries"`
		Styles    []string `json:"styles"`
		Models    []string `json:"models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Countries)
	assert.NotEmpty(t, resp.Styles)
	assert.Contains(t, resp.Models, "gemini-2.5-flash")
}
