package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgAuth "github.com/marcusvales/shoplane-backend/pkg/auth"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
)

func runRequireRole(t *testing.T, required, actual string) *httptest.ResponseRecorder {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test"})

	handler := RequireRole(required, logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if actual != "" {
		req = req.WithContext(WithRole(req.Context(), actual))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec := runRequireRole(t, pkgAuth.RoleAdmin, pkgAuth.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsOtherRole(t *testing.T) {
	rec := runRequireRole(t, pkgAuth.RoleAdmin, pkgAuth.RoleCustomer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleForbidsMissingRole(t *testing.T) {
	rec := runRequireRole(t, pkgAuth.RoleAdmin, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
