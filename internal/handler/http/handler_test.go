package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.userValidator)
	assert.NotNil(t, h.experienceValidator)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/auth/signup"},
	{http.MethodPost, "/auth/admin-signup"},
	{http.MethodPost, "/auth/login"},
	// reference data — anonymous
	{http.MethodGet, "/users/race-ethnicity-options"},
	// users (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/users"},
	{http.MethodGet, "/users/3"},
	{http.MethodGet, "/users/3/experiences"},
	{http.MethodGet, "/users/3/languages"},
	// experiences (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/experiences"},
	{http.MethodPost, "/experiences"},
	{http.MethodPatch, "/experiences/7"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found)
			// or 405 (method not allowed). Protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestInit_WrongMethodReturns404 verifies that an unsupported method on
// a known path is reported as 404, not 405, hiding the route surface.
func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestInit_ProtectedRouteRequiresToken verifies that the auth middleware
// guards the protected group end to end.
func TestInit_ProtectedRouteRequiresToken(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing JWT")
}

// TestInit_AnonymousReferenceData verifies that the option lists are
// reachable without a token.
func TestInit_AnonymousReferenceData(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users/race-ethnicity-options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "race_options")
}
