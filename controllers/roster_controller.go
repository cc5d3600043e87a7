package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/staffctx"
)

// RosterController handles assignment ledger requests
type RosterController struct {
	services *services.Services
	confirms *confirm.Registry
}

// NewRosterController creates a new roster controller
func NewRosterController(services *services.Services, confirms *confirm.Registry) *RosterController {
	return &RosterController{services: services, confirms: confirms}
}

// swapConfirmTarget builds the pending key for a bulk swap. The form
// fields are trimmed the same way the service trims them, so a repeated
// request with stray whitespace still confirms the original pending.
func swapConfirmTarget(fromStaff, toStaff string) string {
	return strings.TrimSpace(fromStaff) + "→" + strings.TrimSpace(toStaff)
}

// Index handles GET /roster. With ?staff= it lists one staff member's
// assignments; without it, the whole ledger. Falls back to the selected
// session identity when no staff parameter is given.
func (c *RosterController) Index(w http.ResponseWriter, r *http.Request) {
	staffName := r.URL.Query().Get("staff")
	if staffName == "" {
		staffName = staffctx.ActiveStaff(r.Context())
	}

	var (
		assignments []models.Assignment
		err         error
	)
	if staffName != "" {
		assignments, err = c.services.Roster.ListByStaff(r.Context(), staffName)
	} else {
		assignments, err = c.services.Roster.ListAll(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"staff":       staffName,
		"assignments": assignments,
		"count":       len(assignments),
	})
}

// AddChild handles POST /roster
func (c *RosterController) AddChild(w http.ResponseWriter, r *http.Request) {
	var form models.AddChildForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}
	if form.StaffName == "" {
		form.StaffName = staffctx.ActiveStaff(r.Context())
	}

	assignment, err := c.services.Roster.AddChild(r.Context(), &form)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, assignment)
}

// Reassign handles POST /roster/{id}/reassign
func (c *RosterController) Reassign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form models.ReassignForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}

	assignment, err := c.services.Roster.Reassign(r.Context(), id, form.NewStaffName)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, assignment)
}

// Checkout handles POST /roster/{id}/checkout, confirm-gated
func (c *RosterController) Checkout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !requireConfirm(w, c.confirms, "checkout", id) {
		return
	}

	if err := c.services.Roster.Checkout(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"checked_out": id})
}

// CancelCheckout handles POST /roster/{id}/checkout/cancel
func (c *RosterController) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	c.confirms.Cancel("checkout", chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

// BulkSwap handles POST /roster/swap, confirm-gated on the staff pair
func (c *RosterController) BulkSwap(w http.ResponseWriter, r *http.Request) {
	var form models.BulkSwapForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}

	if !requireConfirm(w, c.confirms, "bulk-swap", swapConfirmTarget(form.FromStaff, form.ToStaff)) {
		return
	}

	moved, err := c.services.Roster.BulkSwap(r.Context(), &form)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"from":  form.FromStaff,
		"to":    form.ToStaff,
		"moved": moved,
	})
}

// CancelBulkSwap handles POST /roster/swap/cancel
func (c *RosterController) CancelBulkSwap(w http.ResponseWriter, r *http.Request) {
	var form models.BulkSwapForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}

	c.confirms.Cancel("bulk-swap", swapConfirmTarget(form.FromStaff, form.ToStaff))
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

// CareAction handles POST /roster/care
func (c *RosterController) CareAction(w http.ResponseWriter, r *http.Request) {
	var form models.CareActionForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}
	if form.StaffName == "" {
		form.StaffName = staffctx.ActiveStaff(r.Context())
	}

	if err := c.services.Roster.CareAction(r.Context(), &form); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"action": form.Action,
		"child":  form.ChildName,
	})
}
