package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerflow/internal/cache"
	"careerflow/internal/models"
	"careerflow/internal/notifications"
	"careerflow/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"jobId", "job ID"},
		{"applicationNoteId", "application note ID"},
		{"slug", "slug"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", models.NewValidationError("bad"), http.StatusBadRequest},
		{"Conflict is a bad request", models.NewConflictError("dup"), http.StatusBadRequest},
		{"Unauthorized", models.NewUnauthorizedError("no"), http.StatusUnauthorized},
		{"Forbidden", models.NewForbiddenError("no"), http.StatusForbidden},
		{"NotFound", models.NewNotFoundError("job", 1), http.StatusNotFound},
		{"Internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}

func TestRespondServiceErrorEchoesCause(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondServiceError(c, errors.New("connection reset"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer closeBody(resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Server Error", body.Error)
	assert.Equal(t, models.CodeInternal, body.Code)
	assert.Equal(t, "connection reset", body.Details)
}

func TestErrorHandlerCatchesUnhandledErrors(t *testing.T) {
	s := &Server{config: testConfig(t)}
	app := s.NewApp()
	app.Get("/boom", func(*fiber.Ctx) error { return errors.New("unexpected") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer closeBody(resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestReadinessCheck(t *testing.T) {
	db := testutil.NewDB(t)
	s, err := NewServerWithDeps(testConfig(t), db, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, s.hub)

	app := fiber.New()
	app.Get("/health/ready", s.ReadinessCheck)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer closeBody(resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}

func TestReadinessCheckWithoutDatabase(t *testing.T) {
	s := &Server{config: testConfig(t), hub: notifications.NewHub()}
	app := fiber.New()
	app.Get("/health/ready", s.ReadinessCheck)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer closeBody(resp)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestNewServerWithDepsWiresUserCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	})

	db := testutil.NewDB(t)
	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hash", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)

	s, err := NewServerWithDeps(testConfig(t), db, rdb, nil)
	require.NoError(t, err)

	got, err := s.userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.True(t, mr.Exists(cache.UserKey(user.ID)))
}
