package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

// Init builds the router. requestTimeout bounds every request context; zero
// disables the bound.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password/forgot", h.forgotPassword)
		r.Post("/api/auth/password/reset", h.resetPassword)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/account", func(r chi.Router) {
			r.Get("/", h.profile)
			r.Delete("/", h.deleteAccount)
			r.Put("/username", h.changeUsername)
			r.Put("/password", h.changePassword)
			r.Post("/email/password", h.startEmailChange)
			r.Post("/email/code", h.verifyCurrentEmail)
			r.Post("/email/new", h.submitNewEmail)
			r.Post("/email/confirm", h.confirmNewEmail)
			r.Post("/email/resend", h.resendEmailCode)
			r.Post("/delete/code", h.requestDeletionCode)
		})

		r.Route("/api/reports", func(r chi.Router) {
			r.Post("/", h.createReport)
			r.Get("/", h.listReports)
			r.Get("/tags", h.listTags)
			r.Get("/{id}", h.getReport)
			r.Put("/{id}", h.updateReport)
			r.Delete("/{id}", h.deleteReport)
			r.Post("/{id}/tags", h.addTag)
			r.Delete("/{id}/tags/{tag}", h.removeTag)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
