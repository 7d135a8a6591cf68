package http

import (
	"net/http"

	"github.com/MKhiriev/culinary-server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Path parameter names. The admin and instructor user routes share one
// pattern: GET reads it as an email, PATCH as a user id.
const (
	paramEmail   = "email"
	paramID      = "id"
	paramSubject = "subject"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: h.corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
		}),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Method(http.MethodGet, "/metrics", h.metricsHandler)
		r.Post("/jwt", h.issueToken)
		r.Put("/users/{"+paramEmail+"}", h.saveUser)
		r.Get("/class", h.getClasses)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// caller-scoped
		r.Get("/users/admin/{"+paramSubject+"}", h.isAdmin)
		r.Get("/users/instructor/{"+paramSubject+"}", h.isInstructor)
		r.Post("/carts", h.addCartItem)
		r.Get("/carts", h.getCartItems)
		r.Delete("/carts/{"+paramID+"}", h.deleteCartItem)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleInstructor, models.RoleAdmin))
			r.Post("/class", h.createClass)
			r.Get("/class/{"+paramEmail+"}", h.getInstructorClasses)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin))
			r.Get("/users", h.getUsers)
			r.Patch("/users/admin/{"+paramSubject+"}", h.makeAdmin)
			r.Patch("/users/instructor/{"+paramSubject+"}", h.makeInstructor)
			r.Patch("/class/approved/{"+paramID+"}", h.approveClass)
			r.Patch("/class/deny/{"+paramID+"}", h.denyClass)
			r.Post("/class/feedback", h.addClassFeedback)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("culinary Server is running..."))
}
