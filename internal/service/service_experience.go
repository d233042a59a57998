// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// experienceService is the concrete implementation of ExperienceService.
// It manages the attendance ledger: recording sign-ins, closing sessions
// out, and serving the listings.
type experienceService struct {
	experienceRepository store.ExperienceRepository
	userRepository       store.UserRepository
	logger               *logger.Logger
}

// NewExperienceService constructs an ExperienceService wired to the given
// repositories.
func NewExperienceService(
	experienceRepository store.ExperienceRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) ExperienceService {
	return &experienceService{
		experienceRepository: experienceRepository,
		userRepository:       userRepository,
		logger:               logger,
	}
}

// CreateExperience records a new attendance session for an existing user.
//
// The owner is looked up first so that a dangling user ID surfaces as
// store.ErrUserNotFound rather than a bare constraint violation.
func (s *experienceService) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	if experience.UserID <= 0 {
		log.Error().Msg("invalid experience data provided")
		return models.Experience{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUserByID(ctx, experience.UserID); err != nil {
		log.Err(err).Int64("user_id", experience.UserID).Msg("experience owner lookup failed")
		return models.Experience{}, fmt.Errorf("experience owner lookup failed: %w", err)
	}

	created, err := s.experienceRepository.CreateExperience(ctx, experience)
	if err != nil {
		log.Err(err).Int64("user_id", experience.UserID).Msg("experience creation ended with error")
		return models.Experience{}, fmt.Errorf("experience creation ended with error: %w", err)
	}

	return created, nil
}

// CloseOutExperience records the sign-out of an open session, optionally
// relabelling its department.
//
// Ownership is checked against the stored record, not the request: only
// the session's owner or an administrator may close it out. The sign-out
// must not precede the recorded sign-in; violating sessions are rejected
// with ErrSignOutBeforeSignIn before anything is written.
func (s *experienceService) CloseOutExperience(ctx context.Context, caller models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
	log := logger.FromContext(ctx)

	experience, err := s.experienceRepository.GetExperienceByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("experience_id", id).Msg("experience lookup failed")
		return models.Experience{}, fmt.Errorf("experience lookup failed: %w", err)
	}

	if err := Authorize(caller, experience.UserID); err != nil {
		log.Error().
			Int64("experience_id", id).
			Int64("caller_id", caller.ID).
			Msg("caller is neither the session owner nor an administrator")
		return models.Experience{}, err
	}

	if signOutTime.Before(experience.SignInTime) {
		log.Error().
			Int64("experience_id", id).
			Time("sign_in_time", experience.SignInTime).
			Time("sign_out_time", signOutTime).
			Msg("sign out precedes sign in")
		return models.Experience{}, ErrSignOutBeforeSignIn
	}

	updated, err := s.experienceRepository.UpdateExperience(ctx, id, signOutTime, department)
	if err != nil {
		log.Err(err).Int64("experience_id", id).Msg("experience close-out ended with error")
		return models.Experience{}, fmt.Errorf("experience close-out ended with error: %w", err)
	}

	return updated, nil
}

// ListUserExperiences retrieves one user's sessions in chronological
// order. With onlyOpen set, only sessions that have not signed out yet
// are returned. The owner must exist; a missing account surfaces as
// store.ErrUserNotFound.
func (s *experienceService) ListUserExperiences(ctx context.Context, userID int64, onlyOpen bool) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	experiences, err := s.experienceRepository.ListExperiences(ctx, models.ExperienceFilter{UserID: userID, OnlyOpen: onlyOpen})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("experience listing failed")
		return nil, fmt.Errorf("experience listing failed: %w", err)
	}

	return experiences, nil
}

// ListAllExperiences retrieves every session across all users, for the
// administrator ledger view. With onlyOpen set, only sessions still
// missing a sign-out are returned.
func (s *experienceService) ListAllExperiences(ctx context.Context, onlyOpen bool) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	experiences, err := s.experienceRepository.ListExperiences(ctx, models.ExperienceFilter{OnlyOpen: onlyOpen})
	if err != nil {
		log.Err(err).Msg("experience listing failed")
		return nil, fmt.Errorf("experience listing failed: %w", err)
	}

	return experiences, nil
}
