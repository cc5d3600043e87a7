package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campfield/campops/config"
	"github.com/campfield/campops/confirm"
	"github.com/campfield/campops/controllers"
	"github.com/campfield/campops/database"
	"github.com/campfield/campops/metrics"
	appmiddleware "github.com/campfield/campops/middleware"
	"github.com/campfield/campops/repositories"
	"github.com/campfield/campops/services"
	"github.com/campfield/campops/timefmt"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// .env is optional outside development
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg := config.Load()
	timefmt.SetLocation(cfg.Timezone)

	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer database.CloseDB()

	repos := repositories.NewRepositories(database.GetDB())
	srvs := services.NewServices(repos, log)
	confirms := confirm.NewRegistry(cfg.ConfirmTTL)
	ctrl := controllers.NewControllers(srvs, confirms)

	r, err := setupRouter(ctrl, srvs, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to setup router")
	}

	log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"database": cfg.DBPath,
		"timezone": timefmt.Location().String(),
	}).Info("campops tracker starting")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, cfg *config.Config, log *logrus.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))

	// Session middleware carries the selected active-staff identity
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "campops_session",
		Secure:      cfg.UseHTTPS,
		Gclifetime:  3600,
		Maxlifetime: 28800, // a full camp day
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(appmiddleware.StaffIdentity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "campops-tracker"}`)
	})
	r.Handle("/metrics", metrics.Handler())

	// Active staff identity selection
	r.Route("/identity", func(r chi.Router) {
		r.Get("/", ctrl.Identity.Show)
		r.Post("/", ctrl.Identity.Select)
		r.Post("/clear", ctrl.Identity.Clear)
	})

	// Staff registry
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", ctrl.Staff.Index)
		r.Post("/", ctrl.Staff.Create)
		r.Post("/{id}/location", ctrl.Staff.UpdateLocation)
		r.Post("/{id}/name", ctrl.Staff.Rename)
		r.Post("/{id}/delete", ctrl.Staff.Delete)
		r.Post("/{id}/delete/cancel", ctrl.Staff.CancelDelete)
	})

	// Assignment ledger; every load first runs the stale-marker check
	r.Route("/roster", func(r chi.Router) {
		r.Use(appmiddleware.DailyReset(srvs.Reset, log))

		r.Get("/", ctrl.Roster.Index)
		r.Post("/", ctrl.Roster.AddChild)
		r.Post("/{id}/reassign", ctrl.Roster.Reassign)
		r.Post("/{id}/checkout", ctrl.Roster.Checkout)
		r.Post("/{id}/checkout/cancel", ctrl.Roster.CancelCheckout)
		r.Post("/swap", ctrl.Roster.BulkSwap)
		r.Post("/swap/cancel", ctrl.Roster.CancelBulkSwap)
		r.Post("/care", ctrl.Roster.CareAction)
	})

	// Audit log (read-only over HTTP)
	r.Get("/logs", ctrl.Log.Index)
	r.Get("/logs/counts", ctrl.Log.Counts)

	// Incident reports
	r.Route("/incidents", func(r chi.Router) {
		r.Get("/", ctrl.Incident.Index)
		r.Post("/", ctrl.Incident.Create)
	})

	// Daily memos
	r.Route("/memos", func(r chi.Router) {
		r.Get("/", ctrl.Memo.Index)
		r.Post("/", ctrl.Memo.Upsert)
		r.Post("/bulk", ctrl.Memo.BulkUpsert)
		r.Post("/{id}/delete", ctrl.Memo.Delete)
		r.Post("/{id}/delete/cancel", ctrl.Memo.CancelDelete)
	})

	// Admin overview, import and reset
	r.Route("/admin", func(r chi.Router) {
		r.Get("/summary", ctrl.Admin.Summary)
		r.Post("/import/{collection}", ctrl.Admin.Import)
		r.Post("/reset", ctrl.Admin.Reset)
		r.Post("/reset/cancel", ctrl.Admin.CancelReset)
	})

	return r, nil
}
