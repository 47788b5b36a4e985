package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carshowroom/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	engine := gin.New()
	Setup(Config{
		Engine:  engine,
		Auth:    &handler.AuthHandler{},
		Catalog: &handler.CatalogHandler{},
		Intake:  &handler.IntakeHandler{},
		Triage:  &handler.TriageHandler{},
		Sale:    &handler.SaleHandler{},
	})
	return engine
}

func TestHealthCheck(t *testing.T) {
	engine := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouteRegistration(t *testing.T) {
	engine := setupTestRouter(t)

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/me",
		"GET /api/v1/catalog",
		"GET /api/v1/catalog/featured",
		"GET /api/v1/catalog/slug/:slug",
		"GET /api/v1/catalog/:id",
		"POST /api/v1/catalog",
		"GET /api/v1/applications",
		"POST /api/v1/applications/trade-in",
		"POST /api/v1/applications/car-order",
		"POST /api/v1/applications/credit",
		"GET /api/v1/test-drives",
		"POST /api/v1/test-drives",
		"GET /api/v1/triage/requests",
		"GET /api/v1/triage/entries",
		"GET /api/v1/triage/entries/:id",
		"PATCH /api/v1/triage/requests/:kind/:id/status",
		"POST /api/v1/contracts",
		"GET /api/v1/contracts/mine",
		"POST /api/v1/contracts/:id/sign",
		"POST /api/v1/users/employees",
		"POST /api/v1/users/:id/deactivate",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "route %s should be registered", route)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := setupTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/applications"},
		{"POST", "/api/v1/test-drives"},
		{"GET", "/api/v1/triage/requests"},
		{"POST", "/api/v1/contracts"},
		{"GET", "/api/v1/auth/me"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a token", p.method, p.path)
	}
}
