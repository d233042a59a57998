package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the route table.
//
// Anonymous routes cover account creation, login and the static
// reference data consumed by the signup form. Everything else sits
// behind the token authentication middleware; per-route authorization
// (owner-or-admin, admin-only) happens inside the handlers.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(anonymous chi.Router) {
		anonymous.Post("/auth/signup", h.signup)
		anonymous.Post("/auth/admin-signup", h.adminSignup)
		anonymous.Post("/auth/login", h.login)
		anonymous.Get("/users/race-ethnicity-options", h.raceEthnicityOptions)
	})

	router.Group(func(protected chi.Router) {
		protected.Use(h.auth)

		protected.Get("/users", h.listUsers)
		protected.Get("/users/{id}", h.getUser)
		protected.Get("/users/{id}/experiences", h.userExperiences)
		protected.Get("/users/{id}/languages", h.userLanguages)

		protected.Get("/experiences", h.listExperiences)
		protected.Post("/experiences", h.createExperience)
		protected.Patch("/experiences/{id}", h.closeOutExperience)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
