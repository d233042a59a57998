package service

import (
	"github.com/MKhiriev/volunteer-keeper/internal/config"
	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	ExperienceService ExperienceService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService: NewUserService(
			storages.UserRepository,
			storages.ExperienceRepository,
			storages.LanguageRepository,
			logger,
		),
		ExperienceService: NewExperienceService(
			storages.ExperienceRepository,
			storages.UserRepository,
			logger,
		),
	}
}
