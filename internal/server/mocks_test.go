package server

import (
	"context"
	"net/http"
	"testing"

	"careerflow/internal/config"
	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockJobRepository is a mock implementation of repository.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, createdBy uint) ([]models.Job, error) {
	args := m.Called(ctx, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateOwned(ctx context.Context, id, ownerID uint, patch repository.JobPatch) (*models.Job, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockJobRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationRepository is a mock implementation of repository.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, scope repository.ApplicationScope) ([]models.Application, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) StatusBreakdown(ctx context.Context, scope repository.ApplicationScope) (map[string]int64, int64, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(map[string]int64), args.Get(1).(int64), args.Error(2)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const (
	recruiterID uint = 10
	seekerID    uint = 20
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:                   "test",
		Port:                  "0",
		JWTSecret:             "test-secret-for-handler-tests-0123456789",
		JWTTTLHours:           1,
		UploadDir:             t.TempDir(),
		ResumeMaxUploadSizeMB: 1,
	}
}

// asUser mimics the auth middleware for handler-level tests.
func asUser(id uint, role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, id)
		c.Locals(middleware.LocalRole, role)
		return c.Next()
	}
}

func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}
