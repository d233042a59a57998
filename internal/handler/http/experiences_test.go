package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// listExperiences
// ─────────────────────────────────────────────

// TestListExperiences_Admin verifies the full ledger view.
func TestListExperiences_Admin(t *testing.T) {
	experiences := &mockExperienceService{
		listAllExperiencesFn: func(_ context.Context, onlyOpen bool) ([]models.Experience, error) {
			assert.False(t, onlyOpen)
			return []models.Experience{{ID: 1, UserID: 1}, {ID: 2, UserID: 2}}, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/experiences", nil), models.User{ID: 9, IsAdmin: true})
	rec := httptest.NewRecorder()

	h.listExperiences(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"experiences"`)
}

// TestListExperiences_Incomplete verifies that ?incomplete requests only
// open sessions.
func TestListExperiences_Incomplete(t *testing.T) {
	experiences := &mockExperienceService{
		listAllExperiencesFn: func(_ context.Context, onlyOpen bool) ([]models.Experience, error) {
			assert.True(t, onlyOpen)
			return nil, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/experiences?incomplete", nil), models.User{ID: 9, IsAdmin: true})
	rec := httptest.NewRecorder()

	h.listExperiences(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestListExperiences_NonAdmin verifies that the ledger is admin-only.
func TestListExperiences_NonAdmin(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	req := withCaller(httptest.NewRequest(http.MethodGet, "/experiences", nil), models.User{ID: 1})
	rec := httptest.NewRecorder()

	h.listExperiences(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

// ─────────────────────────────────────────────
// createExperience
// ─────────────────────────────────────────────

const createExperienceBody = `{
	"date": "2022-01-05 00:00:00",
	"sign_in_time": "2022-01-05 08:00:00",
	"department": "lab",
	"user_id": 3
}`

// TestCreateExperience_Owner verifies a volunteer signing themselves in.
func TestCreateExperience_Owner(t *testing.T) {
	experiences := &mockExperienceService{
		createExperienceFn: func(_ context.Context, experience models.Experience) (models.Experience, error) {
			assert.Equal(t, int64(3), experience.UserID)
			assert.Equal(t, "lab", experience.Department)
			assert.Nil(t, experience.SignOutTime)
			experience.ID = 1
			return experience, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(createExperienceBody)), models.User{ID: 3})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.UserExperienceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.UserExperience.ID)
}

// TestCreateExperience_ForeignUser verifies that signing in another
// volunteer requires the admin role, and that the rejection happens
// before form validation.
func TestCreateExperience_ForeignUser(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(`{"user_id": 3}`)), models.User{ID: 4})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
	assert.NotContains(t, rec.Body.String(), "This field is required.")
}

// TestCreateExperience_AdminForOtherUser verifies the admin path.
func TestCreateExperience_AdminForOtherUser(t *testing.T) {
	experiences := &mockExperienceService{
		createExperienceFn: func(_ context.Context, experience models.Experience) (models.Experience, error) {
			experience.ID = 2
			return experience, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(createExperienceBody)), models.User{ID: 9, IsAdmin: true})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestCreateExperience_MissingFields verifies the per-field messages.
func TestCreateExperience_MissingFields(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(`{"user_id": 3}`)), models.User{ID: 3})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["date"], "This field is required.")
	assert.Contains(t, body.Errors["sign_in_time"], "This field is required.")
	assert.Contains(t, body.Errors["department"], "This field is required.")
}

// TestCreateExperience_UnknownOwner verifies the 404 mapping for a
// dangling user id.
func TestCreateExperience_UnknownOwner(t *testing.T) {
	experiences := &mockExperienceService{
		createExperienceFn: func(_ context.Context, _ models.Experience) (models.Experience, error) {
			return models.Experience{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(createExperienceBody)), models.User{ID: 9, IsAdmin: true})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

// TestCreateExperience_InvalidJSON verifies the malformed body path.
func TestCreateExperience_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader("{broken")), models.User{ID: 3})
	rec := httptest.NewRecorder()

	h.createExperience(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// ─────────────────────────────────────────────
// closeOutExperience
// ─────────────────────────────────────────────

func newCloseOutRequest(caller models.User, id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/experiences/"+id, strings.NewReader(body))
	return withRouteParam(withCaller(req, caller), "id", id)
}

// TestCloseOutExperience_Success verifies a volunteer signing out.
func TestCloseOutExperience_Success(t *testing.T) {
	experiences := &mockExperienceService{
		closeOutExperienceFn: func(_ context.Context, caller models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
			assert.Equal(t, int64(3), caller.ID)
			assert.Equal(t, int64(7), id)
			assert.Nil(t, department)
			return models.Experience{ID: id, UserID: caller.ID, SignOutTime: &signOutTime}, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "7", `{"sign_out_time": "2022-01-05 12:00:00"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_experience"`)
}

// TestCloseOutExperience_RelabelsDepartment verifies the optional
// department overwrite.
func TestCloseOutExperience_RelabelsDepartment(t *testing.T) {
	experiences := &mockExperienceService{
		closeOutExperienceFn: func(_ context.Context, _ models.User, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
			require.NotNil(t, department)
			assert.Equal(t, "pharmacy", *department)
			return models.Experience{ID: id, SignOutTime: &signOutTime, Department: *department}, nil
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "7", `{"sign_out_time": "2022-01-05 12:00:00", "department": "pharmacy"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pharmacy")
}

// TestCloseOutExperience_MissingSignOutTime verifies the required-field
// message.
func TestCloseOutExperience_MissingSignOutTime(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "7", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["sign_out_time"], "This field is required.")
}

// TestCloseOutExperience_SignOutBeforeSignIn verifies that the service
// rejection is reported as a field error, like form validation.
func TestCloseOutExperience_SignOutBeforeSignIn(t *testing.T) {
	experiences := &mockExperienceService{
		closeOutExperienceFn: func(_ context.Context, _ models.User, _ int64, _ time.Time, _ *string) (models.Experience, error) {
			return models.Experience{}, service.ErrSignOutBeforeSignIn
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "7", `{"sign_out_time": "2022-01-05 06:00:00"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["sign_out_time"], "Sign out time cannot be before sign in time.")
}

// TestCloseOutExperience_ForeignSession verifies the ownership check
// against the stored record.
func TestCloseOutExperience_ForeignSession(t *testing.T) {
	experiences := &mockExperienceService{
		closeOutExperienceFn: func(_ context.Context, _ models.User, _ int64, _ time.Time, _ *string) (models.Experience, error) {
			return models.Experience{}, service.ErrUnauthorized
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 4}, "7", `{"sign_out_time": "2022-01-05 12:00:00"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

// TestCloseOutExperience_NotFound verifies the 404 mapping.
func TestCloseOutExperience_NotFound(t *testing.T) {
	experiences := &mockExperienceService{
		closeOutExperienceFn: func(_ context.Context, _ models.User, _ int64, _ time.Time, _ *string) (models.Experience, error) {
			return models.Experience{}, store.ErrExperienceNotFound
		},
	}
	h := newTestHandler(t, nil, nil, experiences)

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "999", `{"sign_out_time": "2022-01-05 12:00:00"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Experience not found")
}

// TestCloseOutExperience_NonNumericID verifies that a non-numeric id
// segment reads as a missing record.
func TestCloseOutExperience_NonNumericID(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockExperienceService{})

	rec := httptest.NewRecorder()
	h.closeOutExperience(rec, newCloseOutRequest(models.User{ID: 3}, "abc", `{"sign_out_time": "2022-01-05 12:00:00"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Experience not found")
}
