package controllers

import (
	"net/http"
	"strconv"

	"github.com/campfield/campops/services"
)

// LogController handles audit log read requests. The log itself is
// written exclusively by the services as a side effect of mutations.
type LogController struct {
	services *services.Services
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services) *LogController {
	return &LogController{services: services}
}

func parseLimit(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// Index handles GET /logs
func (c *LogController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.List(r.Context(), parseLimit(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"logs":  entries,
		"count": len(entries),
	})
}

// Counts handles GET /logs/counts
func (c *LogController) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := c.services.Audit.CountsByStaff(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"log_counts": counts})
}
