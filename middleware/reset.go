package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/campfield/campops/services"
	"github.com/campfield/campops/timefmt"
)

// DailyReset compares the last-reset marker to the current calendar date
// on each load and truncates stale assignments before the handler runs.
// A failed reset is logged and the request proceeds on the possibly-stale
// view; the next load retries.
func DailyReset(reset services.ResetService, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := reset.EnsureCurrent(r.Context(), timefmt.Today()); err != nil {
				log.WithError(err).Warn("daily reset check failed")
			}
			next.ServeHTTP(w, r)
		})
	}
}
