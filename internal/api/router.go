package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alecgard/mentorloop/internal/metrics"
	"github.com/alecgard/mentorloop/internal/ratelimit"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDeps holds all dependencies for the API router.
type RouterDeps struct {
	Store        *store.Store
	Metrics      *metrics.Metrics
	LoginLimiter *ratelimit.Limiter
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chimw.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(secureHeaders)
	r.Use(slogRequestLogger)
	r.Use(metricsMiddleware(deps.Metrics))

	// Handlers.
	auth := newAuthHandler(deps.Store, deps.LoginLimiter)
	users := newUsersHandler(deps.Store)
	dashboard := newDashboardHandler(deps.Store)
	sessions := newSessionsHandler(deps.Store)
	messages := newMessagesHandler(deps.Store)
	resources := newResourcesHandler()
	admin := newAdminHandler(deps.Store)

	// Health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Live metrics summary.
	if deps.Metrics != nil {
		r.Get("/metrics", deps.Metrics.Handler())
	}

	// Unauthenticated routes.
	r.Post("/api/v1/auth/login", auth.Login)
	r.Post("/api/v1/auth/register", auth.Register)
	r.Post("/api/v1/auth/logout", auth.Logout)

	// Routes that require a logged-in user.
	r.Route("/api/v1", func(ar chi.Router) {
		ar.Use(requireUser(deps.Store))

		ar.Get("/me", users.GetMe)
		ar.Patch("/me", users.UpdateMe)
		ar.Post("/navigate", auth.Navigate)

		ar.Get("/dashboard", dashboard.GetStats)

		ar.Get("/mentors", users.ListMentors)
		ar.Get("/mentors/available", users.ListAvailableMentors)
		ar.Get("/skills", users.ListSkills)

		ar.Get("/sessions", sessions.ListSessions)
		ar.Post("/sessions", sessions.CreateSession)

		ar.Get("/conversations", messages.ListConversations)
		ar.Get("/conversations/{userID}/messages", messages.GetThread)
		ar.Post("/messages", messages.SendMessage)

		ar.Get("/resources", resources.ListResources)
		ar.Get("/resources/featured", resources.ListFeatured)
		ar.Get("/resources/categories", resources.ListCategories)
	})

	// Admin routes.
	r.Route("/api/v1/admin", func(ar chi.Router) {
		ar.Use(requireAdmin(deps.Store))

		ar.Get("/overview", admin.GetOverview)
	})

	return r
}

// slogRequestLogger is a simple structured logging middleware using slog.
func slogRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", ww.BytesWritten(),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}
