package controllers

import (
	"math"
	"net/http"

	"github.com/dmfuentes/smartcart-backend/api/responses"
	"github.com/dmfuentes/smartcart-backend/api/validators"
	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/internal/quantity"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/logger"
)

// CategorizeItem previews how a raw product name resolves without touching
// any list.
func CategorizeItem(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := validators.QueryString(r, "name", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Categorize(name))
	}
}

// NormalizeQuantity previews the quantity suggestion for a raw request.
func NormalizeQuantity(svc *quantity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := validators.QueryString(r, "name", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		qty, err := validators.QueryFloat(r, "quantity", 1)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// ParseFloat accepts "NaN" and "Inf", neither of which survives
		// JSON encoding downstream.
		if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be positive"))
			return
		}

		unit := enums.DefaultUnit
		if raw, _ := validators.QueryString(r, "unit", false); raw != "" {
			parsed, err := enums.ParseUnit(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown unit"))
				return
			}
			unit = parsed
		}

		responses.WriteSuccess(w, svc.Normalize(name, qty, unit))
	}
}
