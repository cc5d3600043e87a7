package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/timefmt"
)

// AdminController handles the overview dashboard, CSV import and the
// forced daily reset.
type AdminController struct {
	services *services.Services
	confirms *confirm.Registry
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services, confirms *confirm.Registry) *AdminController {
	return &AdminController{services: services, confirms: confirms}
}

// Summary handles GET /admin/summary
func (c *AdminController) Summary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timefmt.Today()
	}

	data, err := c.services.Summary.Overview(r.Context(), date)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, data)
}

// Import handles POST /admin/import/{collection} with a CSV body
func (c *AdminController) Import(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	imported, err := c.services.Import.Import(r.Context(), collection, r.Body)
	if err != nil {
		// report progress alongside the failure; earlier rows stay loaded
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":    err.Error(),
			"imported": imported,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"collection": collection,
		"imported":   imported,
	})
}

// Reset handles POST /admin/reset, confirm-gated. Drops every current
// assignment and moves the reset marker to today.
func (c *AdminController) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, c.confirms, "reset", "assignments") {
		return
	}

	dropped, err := c.services.Reset.Force(r.Context(), timefmt.Today())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"dropped": dropped})
}

// CancelReset handles POST /admin/reset/cancel
func (c *AdminController) CancelReset(w http.ResponseWriter, r *http.Request) {
	c.confirms.Cancel("reset", "assignments")
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}
