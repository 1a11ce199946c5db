package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/marcusvales/shoplane-backend/pkg/config"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "shoplane-test",
		ExpirationMinutes: 15,
	}

	return NewRouter(RouterParams{
		Config: cfg,
		Logger: logger.New(logger.Options{ServiceName: "test"}),
	})
}

func TestHealthLiveResponds(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Shoplane-Env"))
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/cart", "/api/wishlist", "/api/orders", "/api/admin/analytics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestCategoryWritesRequireAuth(t *testing.T) {
	router := newTestRouter()
	target := "/api/categories/" + uuid.NewString()

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		// 401 rather than 404 or 405 proves the route is registered behind auth.
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}
}

func TestCategoryDetailRouteRegistered(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/"+uuid.NewString(), nil))
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}

func TestTrailingSlashesAreStripped(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart/", nil))
	// 401 rather than 404 proves the route matched.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
