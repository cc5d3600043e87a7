package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Identity *IdentityController
	Staff    *StaffController
	Roster   *RosterController
	Log      *LogController
	Incident *IncidentController
	Memo     *MemoController
	Admin    *AdminController
}

// NewControllers creates and initializes all controller instances
func NewControllers(srvs *services.Services, confirms *confirm.Registry) *Controllers {
	return &Controllers{
		Identity: NewIdentityController(srvs),
		Staff:    NewStaffController(srvs, confirms),
		Roster:   NewRosterController(srvs, confirms),
		Log:      NewLogController(srvs),
		Incident: NewIncidentController(srvs),
		Memo:     NewMemoController(srvs, confirms),
		Admin:    NewAdminController(srvs, confirms),
	}
}

// respondJSON writes v as a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// errorResponse is the uniform error body shown to the user
type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
	Retry    bool     `json:"retry,omitempty"`
}

// respondError converts an error into a user-visible message. Every user
// action ends here on failure; nothing crashes the session.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err):
		var ve *models.ValidationFailedError
		errors.As(err, &ve)
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:    "Please correct the highlighted fields",
			Messages: ve.Messages,
		})
	case models.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: "That record no longer exists. It may have been removed by another session.",
		})
	case models.IsStoreUnavailable(err):
		respondJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: "The record store is unavailable right now. Please try again.",
			Retry: true,
		})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: err.Error(),
		})
	}
}

// decodeJSON decodes the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewValidationError("Invalid JSON request body")
	}
	return nil
}

// confirmResponse tells the caller a destructive action is pending and
// must be repeated to take effect.
type confirmResponse struct {
	ConfirmRequired bool            `json:"confirm_required"`
	Pending         confirm.Pending `json:"pending"`
	Message         string          `json:"message"`
}

// requireConfirm implements the two-phase confirmation protocol at the
// boundary: the first call records a pending entry and responds 409; the
// repeated call within the TTL clears it and returns true so the handler
// can perform the mutation.
func requireConfirm(w http.ResponseWriter, confirms *confirm.Registry, kind, targetID string) bool {
	confirms.Sweep()
	if confirms.Confirm(kind, targetID) {
		return true
	}

	pending := confirms.Request(kind, targetID)
	respondJSON(w, http.StatusConflict, confirmResponse{
		ConfirmRequired: true,
		Pending:         pending,
		Message:         "Repeat the request to confirm this action.",
	})
	return false
}
