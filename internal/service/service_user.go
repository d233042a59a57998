package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// userService is the concrete implementation of UserService. It serves
// profile reads, the administrator roster with per-user hour roll-ups,
// and the language listings.
type userService struct {
	userRepository       store.UserRepository
	experienceRepository store.ExperienceRepository
	languageRepository   store.LanguageRepository
	logger               *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
func NewUserService(
	userRepository store.UserRepository,
	experienceRepository store.ExperienceRepository,
	languageRepository store.LanguageRepository,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:       userRepository,
		experienceRepository: experienceRepository,
		languageRepository:   languageRepository,
		logger:               logger,
	}
}

// GetUser retrieves one full user profile. A missing account surfaces as
// store.ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers builds the administrator roster: every account reduced to a
// summary row carrying the roll-up of its closed attendance hours.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		experiences, err := s.experienceRepository.ListExperiences(ctx, models.ExperienceFilter{UserID: u.ID})
		if err != nil {
			log.Err(err).Int64("user_id", u.ID).Msg("experience listing for roster failed")
			return nil, fmt.Errorf("experience listing for roster failed: %w", err)
		}

		summaries = append(summaries, models.UserSummary{
			ID:              u.ID,
			BadgeNumber:     u.BadgeNumber,
			Email:           u.Email,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			Status:          u.Status,
			IsStudent:       u.IsStudent,
			IsMultilingual:  u.IsMultilingual,
			IsAdmin:         u.IsAdmin,
			ExperienceHours: TotalHours(experiences),
		})
	}

	return summaries, nil
}

// ListLanguages retrieves the languages reported by one user. The owner
// must exist; a missing account surfaces as store.ErrUserNotFound.
func (s *userService) ListLanguages(ctx context.Context, userID int64) ([]models.Language, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	languages, err := s.languageRepository.ListLanguagesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("language listing failed")
		return nil, fmt.Errorf("language listing failed: %w", err)
	}

	return languages, nil
}
