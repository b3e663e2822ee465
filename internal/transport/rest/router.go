package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/aosmicepp/platform/internal/auth"
	"github.com/aosmicepp/platform/internal/catalog"
	"github.com/aosmicepp/platform/internal/dashboard"
	"github.com/aosmicepp/platform/internal/demande"
	"github.com/aosmicepp/platform/internal/message"
	"github.com/aosmicepp/platform/internal/news"
	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/reclamation"
	"github.com/aosmicepp/platform/internal/transport/middleware"
	"github.com/aosmicepp/platform/internal/transport/swagger"
	"github.com/aosmicepp/platform/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Roles       *auth.RoleAuthorization
	User        *user.Handler
	Demande     *demande.Handler
	Reclamation *reclamation.Handler
	News        *news.Handler
	Catalog     *catalog.Handler
	Message     *message.Handler
	Dashboard   *dashboard.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.With(h.Auth.AuthMiddleware).Post("/change-password", h.Auth.ChangePassword)
		})

		// Public surface: published news, active catalog, contact form.
		r.Get("/news", h.News.GetPublished)
		r.Get("/news/{id}", h.News.GetPublishedByID)
		r.Get("/services", h.Catalog.GetActive)
		r.Get("/services/types", h.Catalog.GetTypes)
		r.Post("/messages", h.Message.Submit)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Use(h.Roles.Require(rbac.RoleAdmin))
				ur.Get("/", h.User.GetAll)
				ur.Post("/register", h.User.Register)
				ur.Get("/count", h.User.Count)
				ur.Get("/recent", h.User.GetRecent)
				ur.Get("/role/{role}", h.User.GetByRole)
				ur.Get("/{id}", h.User.GetByID)
				ur.Put("/{id}", h.User.Update)
				ur.Put("/{id}/toggle-status", h.User.ToggleStatus)
			})

			pr.Route("/demandes", func(dr chi.Router) {
				dr.Use(h.Roles.Require(rbac.RoleAdmin, rbac.RoleSupport, rbac.RoleAgent))
				dr.Get("/", h.Demande.GetAll)
				dr.Post("/", h.Demande.Create)
				dr.Get("/me", h.Demande.GetMine)
				dr.Get("/count", h.Demande.Count)
				dr.Get("/count/pending", h.Demande.CountPending)
				dr.Get("/recent", h.Demande.GetRecent)
				dr.Get("/user/{userId}", h.Demande.GetByUser)
				dr.Get("/{id}", h.Demande.GetByID)
				dr.Patch("/{id}/status", h.Demande.UpdateStatus)
				dr.Patch("/{id}/assign", h.Demande.Assign)
			})

			pr.Route("/reclamations", func(rr chi.Router) {
				rr.With(h.Roles.Require(rbac.RoleAdmin, rbac.RoleSupport)).Get("/", h.Reclamation.GetAll)
				rr.With(h.Roles.Require(rbac.RoleAdmin, rbac.RoleSupport)).Get("/{id}", h.Reclamation.GetByID)
				rr.Post("/", h.Reclamation.Create)
				rr.With(h.Roles.Require(rbac.RoleAdmin)).Patch("/{id}/assign/{userId}", h.Reclamation.Assign)
				rr.With(h.Roles.Require(rbac.RoleAdmin)).Patch("/{id}/unassign", h.Reclamation.Unassign)
				rr.With(h.Roles.Require(rbac.RoleAdmin)).Patch("/{id}/status", h.Reclamation.UpdateStatus)
			})

			pr.Route("/news/admin", func(nr chi.Router) {
				nr.Use(h.Roles.Require(rbac.RoleAdmin, rbac.RoleSupport))
				nr.Get("/", h.News.GetAll)
				nr.Post("/", h.News.Create)
				nr.Get("/{id}", h.News.GetByID)
				nr.Put("/{id}", h.News.Update)
				nr.Put("/{id}/toggle-published", h.News.TogglePublished)
				nr.Delete("/{id}", h.News.Delete)
			})

			pr.Route("/services/admin", func(cr chi.Router) {
				cr.Use(h.Roles.Require(rbac.RoleAdmin))
				cr.Get("/", h.Catalog.GetAll)
				cr.Post("/", h.Catalog.Create)
				cr.Put("/{id}", h.Catalog.Update)
				cr.Put("/{id}/toggle-status", h.Catalog.ToggleStatus)
				cr.Delete("/{id}", h.Catalog.Delete)
			})
			pr.Get("/services/{id}", h.Catalog.GetByID)

			// The contact form POST on /messages is public, so the admin
			// routes are registered inline instead of as a subrouter.
			admin := h.Roles.Require(rbac.RoleAdmin)
			pr.With(admin).Get("/messages", h.Message.GetAll)
			pr.With(admin).Get("/messages/{id}", h.Message.GetByID)
			pr.With(admin).Patch("/messages/{id}/read", h.Message.MarkRead)

			pr.With(h.Roles.Require(rbac.RoleAdmin)).Get("/dashboard/stats", h.Dashboard.GetStats)
		})
	})
}
