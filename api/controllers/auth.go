package controllers

import (
	"net/http"

	"github.com/marcusvales/shoplane-backend/api/responses"
	"github.com/marcusvales/shoplane-backend/api/validators"
	authsvc "github.com/marcusvales/shoplane-backend/internal/auth"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
)

// TokenObtain exchanges credentials for an access/refresh pair.
func TokenObtain(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.TokenRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pair, err := svc.IssueTokens(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pair)
	}
}

// TokenRefresh rotates an access/refresh pair.
func TokenRefresh(svc authsvc.RefreshService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.RefreshRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pair, err := svc.Refresh(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pair)
	}
}
