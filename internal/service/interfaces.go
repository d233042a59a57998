package service

import (
	"context"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	RegisterAdmin(ctx context.Context, user models.User, password, inviteCode string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UserFromToken(ctx context.Context, token models.Token) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	ListLanguages(ctx context.Context, userID int64) ([]models.Language, error)
}

type ExperienceService interface {
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	CloseOutExperience(ctx context.Context, caller models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error)
	ListUserExperiences(ctx context.Context, userID int64, onlyOpen bool) ([]models.Experience, error)
	ListAllExperiences(ctx context.Context, onlyOpen bool) ([]models.Experience, error)
}
