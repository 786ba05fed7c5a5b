package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmfuentes/smartcart-backend/api/responses"
	"github.com/dmfuentes/smartcart-backend/api/validators"
	"github.com/dmfuentes/smartcart-backend/internal/deals"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/logger"
	"github.com/dmfuentes/smartcart-backend/pkg/pagination"
)

// ListDeals returns a page of currently active deals, optionally narrowed to
// one retailer or shelf category.
func ListDeals(svc deals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.QueryInt(r, "limit", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor, _ := validators.QueryString(r, "cursor", false)

		var filter deals.ListFilter
		if raw, _ := validators.QueryString(r, "retailer_id", false); raw != "" {
			retailerID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid retailer_id"))
				return
			}
			filter.RetailerID = retailerID
		}
		if raw, _ := validators.QueryString(r, "category", false); raw != "" {
			category, err := enums.ParseCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category"))
				return
			}
			filter.Category = category
		}

		page, err := svc.ListActive(r.Context(), filter, pagination.Params{Limit: limit, Cursor: cursor})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// CreateDeal publishes a deal for a retailer.
func CreateDeal(svc deals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input deals.CreateDealInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
