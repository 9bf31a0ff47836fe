package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerflow/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success defaults role to user",
			body: `{"name":"Jane","email":"JANE@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleUser && u.Password != "secret123"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = 7
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: `{"name":"Jane","email":"jane@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "jane@example.com").
					Return(&models.User{ID: 1, Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User already exists",
		},
		{
			name:           "Missing fields",
			body:           `{"email":"jane@example.com"}`,
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Please provide all values",
		},
		{
			name:           "Unknown role",
			body:           `{"name":"Jane","email":"jane@example.com","password":"secret123","role":"admin"}`,
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "role must be one of: recruiter, user",
		},
		{
			name:           "Malformed body",
			body:           `{"name":`,
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			users := new(MockUserRepository)
			s := &Server{config: testConfig(t), userRepo: users}
			app.Post("/auth/signup", s.Signup)
			tt.mockSetup(users)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer closeBody(resp)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedError != "" {
				var body models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
				return
			}

			var body map[string]map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.EqualValues(t, 7, body["user"]["id"])
			assert.NotContains(t, body["user"], "password")
			assert.NotContains(t, body, "token")
			users.AssertExpectations(t)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := fiber.New()
	users := new(MockUserRepository)
	s := &Server{config: testConfig(t), userRepo: users}
	app.Post("/auth/login", s.Login)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"whatever"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer closeBody(resp)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid credentials", body.Error)
}

func TestLogout(t *testing.T) {
	app := fiber.New()
	s := &Server{config: testConfig(t), userRepo: new(MockUserRepository)}
	app.Post("/auth/logout", s.Logout)

	token, err := s.authSvc().IssueToken(&models.User{ID: seekerID, Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer closeBody(resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer closeBody(resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
