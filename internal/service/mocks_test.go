package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getUserByIDFn     func(ctx context.Context, id int64) (models.User, error)
	listUsersFn       func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.ExperienceRepository
// ─────────────────────────────────────────────

type mockExperienceRepository struct {
	createExperienceFn  func(ctx context.Context, experience models.Experience) (models.Experience, error)
	getExperienceByIDFn func(ctx context.Context, id int64) (models.Experience, error)
	listExperiencesFn   func(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	updateExperienceFn  func(ctx context.Context, id int64, signOutTime time.Time, department *string) (models.Experience, error)
}

func (m *mockExperienceRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	if m.createExperienceFn != nil {
		return m.createExperienceFn(ctx, experience)
	}
	return experience, nil
}

func (m *mockExperienceRepository) GetExperienceByID(ctx context.Context, id int64) (models.Experience, error) {
	if m.getExperienceByIDFn != nil {
		return m.getExperienceByIDFn(ctx, id)
	}
	return models.Experience{ID: id}, nil
}

func (m *mockExperienceRepository) ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	if m.listExperiencesFn != nil {
		return m.listExperiencesFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockExperienceRepository) UpdateExperience(ctx context.Context, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
	if m.updateExperienceFn != nil {
		return m.updateExperienceFn(ctx, id, signOutTime, department)
	}
	return models.Experience{ID: id}, nil
}

// ─────────────────────────────────────────────
// Mock: store.LanguageRepository
// ─────────────────────────────────────────────

type mockLanguageRepository struct {
	listLanguagesByUserFn func(ctx context.Context, userID int64) ([]models.Language, error)
}

func (m *mockLanguageRepository) ListLanguagesByUser(ctx context.Context, userID int64) ([]models.Language, error) {
	if m.listLanguagesByUserFn != nil {
		return m.listLanguagesByUserFn(ctx, userID)
	}
	return nil, nil
}

var errStorage = errors.New("storage error")
