package store

import "github.com/MKhiriev/volunteer-keeper/internal/logger"

type Storages struct {
	UserRepository       UserRepository
	ExperienceRepository ExperienceRepository
	LanguageRepository   LanguageRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ExperienceRepository: NewExperienceRepository(db, log),
		LanguageRepository:   NewLanguageRepository(db, log),
	}
}
