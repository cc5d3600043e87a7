package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/services"
)

// StaffController handles staff registry requests
type StaffController struct {
	services *services.Services
	confirms *confirm.Registry
}

// NewStaffController creates a new staff controller
func NewStaffController(services *services.Services, confirms *confirm.Registry) *StaffController {
	return &StaffController{services: services, confirms: confirms}
}

// Index handles GET /staff
func (c *StaffController) Index(w http.ResponseWriter, r *http.Request) {
	members, err := c.services.Staff.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"staff": members})
}

// Create handles POST /staff
func (c *StaffController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.StaffForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}

	member, err := c.services.Staff.Create(r.Context(), &form)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

// UpdateLocation handles POST /staff/{id}/location
func (c *StaffController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Location string `json:"location"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}

	member, err := c.services.Staff.UpdateLocation(r.Context(), id, body.Location)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, member)
}

// Rename handles POST /staff/{id}/name
func (c *StaffController) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}

	member, err := c.services.Staff.Rename(r.Context(), id, body.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, member)
}

// Delete handles POST /staff/{id}/delete. Administrative override,
// confirm-gated, no cascade onto existing assignments.
func (c *StaffController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !requireConfirm(w, c.confirms, "staff-delete", id) {
		return
	}

	if err := c.services.Staff.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// CancelDelete handles POST /staff/{id}/delete/cancel
func (c *StaffController) CancelDelete(w http.ResponseWriter, r *http.Request) {
	c.confirms.Cancel("staff-delete", chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}
