package controllers

import (
	"net/http"

	"github.com/marcusvales/shoplane-backend/api/responses"
	analyticssvc "github.com/marcusvales/shoplane-backend/internal/analytics"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
	"github.com/marcusvales/shoplane-backend/pkg/logger"
)

// AnalyticsSummary returns the admin sales overview.
func AnalyticsSummary(svc analyticssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
