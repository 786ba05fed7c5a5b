package controllers

import (
	"net/http"

	"github.com/dmfuentes/smartcart-backend/api/responses"
	"github.com/dmfuentes/smartcart-backend/api/validators"
	"github.com/dmfuentes/smartcart-backend/internal/planner"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/logger"
)

type generatePlanRequest struct {
	Type string `json:"type" validate:"required"`
}

// GeneratePlan builds the requested plan variant for a list.
func GeneratePlan(svc planner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, err := pathUUID(r, "listID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body generatePlanRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		planType, err := enums.ParsePlanType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown plan type"))
			return
		}

		plan, err := svc.GeneratePlan(logg.WithListID(r.Context(), listID.String()), listID, planType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, plan)
	}
}
