package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerflow/internal/models"
	"careerflow/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJobApp(t *testing.T, id uint, role models.Role) (*fiber.App, *MockJobRepository) {
	t.Helper()
	app := fiber.New()
	jobs := new(MockJobRepository)
	s := &Server{config: testConfig(t), jobRepo: jobs}

	app.Use(asUser(id, role))
	app.Get("/jobs", s.ListJobs)
	app.Post("/jobs", s.CreateJob)
	app.Patch("/jobs/:id", s.UpdateJob)
	app.Delete("/jobs/:id", s.DeleteJob)
	return app, jobs
}

func TestListJobs(t *testing.T) {
	t.Run("Recruiter sees own jobs", func(t *testing.T) {
		app, jobs := newJobApp(t, recruiterID, models.RoleRecruiter)
		jobs.On("List", mock.Anything, recruiterID).
			Return([]models.Job{{ID: 2, CreatedBy: recruiterID}, {ID: 1, CreatedBy: recruiterID}}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
		require.NoError(t, err)
		defer closeBody(resp)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body JobListResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.Count)
		assert.Equal(t, uint(2), body.Jobs[0].ID)
		jobs.AssertExpectations(t)
	})

	t.Run("Seeker sees all jobs, empty list is an array", func(t *testing.T) {
		app, jobs := newJobApp(t, seekerID, models.RoleUser)
		jobs.On("List", mock.Anything, uint(0)).Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
		require.NoError(t, err)
		defer closeBody(resp)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []any{}, body["jobs"])
		assert.EqualValues(t, 0, body["count"])
	})
}

func TestCreateJob(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		body           string
		mockSetup      func(m *MockJobRepository)
		expectedStatus int
	}{
		{
			name: "Recruiter creates with defaults",
			role: models.RoleRecruiter,
			body: `{"company":"Acme","position":"Backend Engineer"}`,
			mockSetup: func(m *MockJobRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
					return j.CreatedBy == recruiterID &&
						j.Status == models.JobStatusPending &&
						j.JobType == models.JobTypeFullTime &&
						j.JobLocation == "my city"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Seeker is forbidden",
			role:           models.RoleUser,
			body:           `{"company":"Acme","position":"Backend Engineer"}`,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing position",
			role:           models.RoleRecruiter,
			body:           `{"company":"Acme"}`,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Company longer than 50 characters",
			role:           models.RoleRecruiter,
			body:           `{"company":"` + strings.Repeat("a", 51) + `","position":"Dev"}`,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Position longer than 100 characters",
			role:           models.RoleRecruiter,
			body:           `{"company":"Acme","position":"` + strings.Repeat("p", 101) + `"}`,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Company at the 50 character limit",
			role:           models.RoleRecruiter,
			body:           `{"company":"` + strings.Repeat("é", 50) + `","position":"Dev"}`,
			mockSetup: func(m *MockJobRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Unknown job type",
			role:           models.RoleRecruiter,
			body:           `{"company":"Acme","position":"Dev","jobType":"gig"}`,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := seekerID
			if tt.role == models.RoleRecruiter {
				id = recruiterID
			}
			app, jobs := newJobApp(t, id, tt.role)
			tt.mockSetup(jobs)

			req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer closeBody(resp)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			jobs.AssertExpectations(t)
		})
	}
}

func TestUpdateJob(t *testing.T) {
	t.Run("Owner updates position", func(t *testing.T) {
		app, jobs := newJobApp(t, recruiterID, models.RoleRecruiter)
		jobs.On("UpdateOwned", mock.Anything, uint(5), recruiterID, mock.MatchedBy(func(p repository.JobPatch) bool {
			return p.Position != nil && *p.Position == "Staff Engineer" && p.Company == nil
		})).Return(&models.Job{ID: 5, Position: "Staff Engineer", CreatedBy: recruiterID}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/jobs/5", strings.NewReader(`{"position":"Staff Engineer"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer closeBody(resp)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body JobResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Staff Engineer", body.Job.Position)
		jobs.AssertExpectations(t)
	})

	t.Run("Other recruiter's job is not found", func(t *testing.T) {
		app, jobs := newJobApp(t, recruiterID, models.RoleRecruiter)
		jobs.On("UpdateOwned", mock.Anything, uint(9), recruiterID, mock.Anything).
			Return(nil, models.NewNotFoundError("job", 9))

		req := httptest.NewRequest(http.MethodPatch, "/jobs/9", strings.NewReader(`{"status":"offer"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer closeBody(resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Empty company rejected", func(t *testing.T) {
		app, jobs := newJobApp(t, recruiterID, models.RoleRecruiter)

		req := httptest.NewRequest(http.MethodPatch, "/jobs/5", strings.NewReader(`{"company":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer closeBody(resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, jobs.Calls)
	})

	t.Run("Overlong company rejected before storage", func(t *testing.T) {
		app, jobs := newJobApp(t, recruiterID, models.RoleRecruiter)

		body := `{"company":"` + strings.Repeat("a", 51) + `"}`
		req := httptest.NewRequest(http.MethodPatch, "/jobs/5", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer closeBody(resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var errBody models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.Equal(t, models.CodeValidation, errBody.Code)
		assert.Empty(t, jobs.Calls)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		app, _ := newJobApp(t, recruiterID, models.RoleRecruiter)

		req := httptest.NewRequest(http.MethodPatch, "/jobs/abc", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer closeBody(resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid ID", body.Error)
	})
}

func TestDeleteJob(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		mockSetup      func(m *MockJobRepository)
		expectedStatus int
	}{
		{
			name: "Owner deletes",
			role: models.RoleRecruiter,
			mockSetup: func(m *MockJobRepository) {
				m.On("DeleteOwned", mock.Anything, uint(3), recruiterID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not owned",
			role: models.RoleRecruiter,
			mockSetup: func(m *MockJobRepository) {
				m.On("DeleteOwned", mock.Anything, uint(3), recruiterID).Return(models.NewNotFoundError("job", 3))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Seeker is forbidden",
			role:           models.RoleUser,
			mockSetup:      func(*MockJobRepository) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, jobs := newJobApp(t, recruiterID, tt.role)
			tt.mockSetup(jobs)

			resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/jobs/3", nil))
			require.NoError(t, err)
			defer closeBody(resp)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			jobs.AssertExpectations(t)
		})
	}
}
