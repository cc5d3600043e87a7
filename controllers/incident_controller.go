package controllers

import (
	"net/http"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/staffctx"
)

// IncidentController handles incident report requests
type IncidentController struct {
	services *services.Services
}

// NewIncidentController creates a new incident controller
func NewIncidentController(services *services.Services) *IncidentController {
	return &IncidentController{services: services}
}

// Index handles GET /incidents
func (c *IncidentController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Incident.List(r.Context(), parseLimit(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"incidents": entries,
		"count":     len(entries),
	})
}

// Create handles POST /incidents
func (c *IncidentController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.IncidentForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}
	if form.StaffName == "" {
		form.StaffName = staffctx.ActiveStaff(r.Context())
	}

	entry, err := c.services.Incident.Report(r.Context(), &form)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}
