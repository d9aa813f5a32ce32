package controllers

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stockroomhq/inventory-backend/api/responses"
	"github.com/stockroomhq/inventory-backend/api/validators"
	"github.com/stockroomhq/inventory-backend/internal/inventory"
	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
)

// ListInventory handles GET /api/inventory. Filters from the query
// string compose with AND; no filters returns everything.
func ListInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := listInputFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// CreateInventory handles POST /api/inventory. Success is a 201 with
// the stored record and a Location header pointing at it.
func CreateInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload inventory.RecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/inventory/%d", record.ID))
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// GetInventory handles GET /api/inventory/{recordID}.
func GetInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// UpdateInventory handles PUT /api/inventory/{recordID}. The body must
// be declared as JSON; anything else is a 415 before the body is read.
func UpdateInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireJSONContentType(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := recordIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload inventory.RecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Update(r.Context(), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// DeleteInventory handles DELETE /api/inventory/{recordID}. Always a
// 204, whether or not the record existed.
func DeleteInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// RestockInventory handles PUT /api/inventory/{recordID}/restock.
func RestockInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := recordIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Restock(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

func recordIDFromURL(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "recordID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(
			pkgerrors.CodeNotFound,
			fmt.Sprintf("Inventory record with id '%s' was not found.", raw),
		)
	}
	return uint(id), nil
}

func requireJSONContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "Content-Type must be application/json").
			WithDetails(map[string]any{"content_type": contentType})
	}
	return nil
}

func listInputFromQuery(r *http.Request) (inventory.ListInput, error) {
	input := inventory.ListInput{
		Condition: r.URL.Query().Get("condition"),
		Query:     strings.TrimSpace(r.URL.Query().Get("query")),
	}

	targets := []struct {
		key  string
		dest **int
	}{
		{"product_id", &input.ProductID},
		{"quantity", &input.Quantity},
		{"quantity_lt", &input.QuantityLT},
		{"quantity_gt", &input.QuantityGT},
		{"restock_level", &input.RestockLevel},
		{"restock_lt", &input.RestockLevelLT},
		{"restock_gt", &input.RestockLevelGT},
	}
	for _, target := range targets {
		value, err := validators.ParseOptionalQueryInt(r, target.key)
		if err != nil {
			return inventory.ListInput{}, err
		}
		*target.dest = value
	}
	return input, nil
}
