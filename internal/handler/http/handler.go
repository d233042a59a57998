// Package http contains the HTTP transport layer: the chi route table,
// the request handlers and the middleware chain (trace-id, request
// logging, token authentication).
//
// Handlers stay thin: they decode the payload, run it through the form
// validators, delegate to the business services and translate sentinel
// errors into the uniform {"errors": ...} failure body.
package http

import (
	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/validators"
)

// Handler carries the dependencies shared by every route: the business
// services, the request validators and the base logger.
type Handler struct {
	services            *service.Services
	userValidator       validators.UserValidator
	experienceValidator validators.ExperienceValidator
	logger              *logger.Logger
}

// NewHandler constructs a Handler with freshly built validators.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{
		services:            services,
		userValidator:       validators.NewUserValidator(),
		experienceValidator: validators.NewExperienceValidator(),
		logger:              logger,
	}
}
