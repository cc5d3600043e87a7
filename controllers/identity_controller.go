package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/campfield/campops/middleware"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/staffctx"
)

// IdentityController handles selection of the active staff identity. This
// is a display-identity picker, not authentication.
type IdentityController struct {
	services *services.Services
}

// NewIdentityController creates a new identity controller
func NewIdentityController(services *services.Services) *IdentityController {
	return &IdentityController{services: services}
}

// Show handles GET /identity
func (c *IdentityController) Show(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"active_staff": staffctx.ActiveStaff(r.Context()),
	})
}

// Select handles POST /identity
func (c *IdentityController) Select(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StaffName string `json:"staff_name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}

	// identity must refer to a known staff member
	members, err := c.services.Staff.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	known := false
	for _, m := range members {
		if m.Name == body.StaffName {
			known = true
			break
		}
	}
	if !known {
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: "No staff member named " + body.StaffName,
		})
		return
	}

	sess := session.GetSession(r)
	if sess != nil {
		_ = sess.Set(middleware.SessionStaffKey, body.StaffName)
	}

	respondJSON(w, http.StatusOK, map[string]string{"active_staff": body.StaffName})
}

// Clear handles POST /identity/clear
func (c *IdentityController) Clear(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if sess != nil {
		_ = sess.Delete(middleware.SessionStaffKey)
	}

	respondJSON(w, http.StatusOK, map[string]string{"active_staff": ""})
}
