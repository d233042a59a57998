package store

import (
	"context"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type ExperienceRepository interface {
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	GetExperienceByID(ctx context.Context, id int64) (models.Experience, error)
	ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	UpdateExperience(ctx context.Context, id int64, signOutTime time.Time, department *string) (models.Experience, error)
}

type LanguageRepository interface {
	ListLanguagesByUser(ctx context.Context, userID int64) ([]models.Language, error)
}
