package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/MKhiriev/go-study-shelf/internal/app"
)

// Init builds the router and wraps it with CORS.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/verify", h.verifyEmail)
		r.Post("/api/auth/resend", h.resendVerification)
		r.Get("/api/version", h.getServerVersion)
		r.Get(filesRoute, h.serveFiles())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)

		r.Get("/api/subjects", h.listSubjects)
		r.With(h.bodyHashing).Post("/api/subjects", h.createSubject)
		r.Get("/api/subjects/{subjectID}/documents", h.listDocuments)
		r.With(h.bodyHashing).Post("/api/documents", h.createDocument)

		r.Post("/api/files", h.uploadFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", app.HashHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}).Handler(router)
}
