package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// Hand-rolled service mocks. Each method field can be overridden per
// test case; calling an unset field panics, which points straight at the
// test that exercised an unexpected dependency.

type mockAuthService struct {
	registerUserFn  func(ctx context.Context, user models.User, password string) (models.User, error)
	registerAdminFn func(ctx context.Context, user models.User, password, inviteCode string) (models.User, error)
	loginFn         func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	userFromTokenFn func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, user models.User, password, inviteCode string) (models.User, error) {
	return m.registerAdminFn(ctx, user, password, inviteCode)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UserFromToken(ctx context.Context, token models.Token) (models.User, error) {
	return m.userFromTokenFn(ctx, token)
}

type mockUserService struct {
	getUserFn       func(ctx context.Context, id int64) (models.User, error)
	listUsersFn     func(ctx context.Context) ([]models.UserSummary, error)
	listLanguagesFn func(ctx context.Context, userID int64) ([]models.Language, error)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) ListLanguages(ctx context.Context, userID int64) ([]models.Language, error) {
	return m.listLanguagesFn(ctx, userID)
}

type mockExperienceService struct {
	createExperienceFn    func(ctx context.Context, experience models.Experience) (models.Experience, error)
	closeOutExperienceFn  func(ctx context.Context, caller models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error)
	listUserExperiencesFn func(ctx context.Context, userID int64, onlyOpen bool) ([]models.Experience, error)
	listAllExperiencesFn  func(ctx context.Context, onlyOpen bool) ([]models.Experience, error)
}

func (m *mockExperienceService) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	return m.createExperienceFn(ctx, experience)
}

func (m *mockExperienceService) CloseOutExperience(ctx context.Context, caller models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
	return m.closeOutExperienceFn(ctx, caller, id, signOutTime, department)
}

func (m *mockExperienceService) ListUserExperiences(ctx context.Context, userID int64, onlyOpen bool) ([]models.Experience, error) {
	return m.listUserExperiencesFn(ctx, userID, onlyOpen)
}

func (m *mockExperienceService) ListAllExperiences(ctx context.Context, onlyOpen bool) ([]models.Experience, error) {
	return m.listAllExperiencesFn(ctx, onlyOpen)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil
// mocks are replaced with empty ones so that wiring stays non-nil.
func newTestHandler(t *testing.T, auth *mockAuthService, users *mockUserService, experiences *mockExperienceService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if users == nil {
		users = &mockUserService{}
	}
	if experiences == nil {
		experiences = &mockExperienceService{}
	}

	return NewHandler(&service.Services{
		AuthService:       auth,
		UserService:       users,
		ExperienceService: experiences,
	}, logger.Nop())
}

// withCaller stores the authenticated caller in the request context, the
// way the auth middleware does for handlers downstream.
func withCaller(r *http.Request, caller models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.CallerCtxKey, caller))
}

// withRouteParam injects a chi route parameter, so handlers reading
// {id} can be exercised without going through the full router.
func withRouteParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
