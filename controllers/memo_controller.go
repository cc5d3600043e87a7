package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/staffctx"
)

// MemoController handles memo requests
type MemoController struct {
	services *services.Services
	confirms *confirm.Registry
}

// NewMemoController creates a new memo controller
func NewMemoController(services *services.Services, confirms *confirm.Registry) *MemoController {
	return &MemoController{services: services, confirms: confirms}
}

// Index handles GET /memos. With ?staff= and ?date= it looks up the
// single memo for that key; without parameters it lists everything.
func (c *MemoController) Index(w http.ResponseWriter, r *http.Request) {
	staffName := r.URL.Query().Get("staff")
	date := r.URL.Query().Get("date")

	if staffName == "" && date == "" {
		memos, err := c.services.Memo.ListAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"memos": memos})
		return
	}

	if staffName == "" {
		staffName = staffctx.ActiveStaff(r.Context())
	}

	memo, err := c.services.Memo.Find(r.Context(), staffName, date)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"memo": memo})
}

// Upsert handles POST /memos
func (c *MemoController) Upsert(w http.ResponseWriter, r *http.Request) {
	var form models.MemoForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}
	if form.StaffName == "" {
		form.StaffName = staffctx.ActiveStaff(r.Context())
	}

	memo, err := c.services.Memo.Upsert(r.Context(), &form)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, memo)
}

// BulkUpsert handles POST /memos/bulk
func (c *MemoController) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var form models.BulkMemoForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, err)
		return
	}

	written, err := c.services.Memo.BulkUpsert(r.Context(), &form)
	if err != nil {
		// partial failure: report how far the loop got
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   err.Error(),
			"written": written,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"written": written})
}

// Delete handles POST /memos/{id}/delete, confirm-gated
func (c *MemoController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !requireConfirm(w, c.confirms, "memo-delete", id) {
		return
	}

	if err := c.services.Memo.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// CancelDelete handles POST /memos/{id}/delete/cancel
func (c *MemoController) CancelDelete(w http.ResponseWriter, r *http.Request) {
	c.confirms.Cancel("memo-delete", chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}
