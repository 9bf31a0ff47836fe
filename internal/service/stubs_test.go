package service

import (
	"context"
	"sync"
	"testing"

	"careerflow/internal/mailer"
	"careerflow/internal/models"
	"careerflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateProfileFn func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) UpdateProfile(ctx context.Context, u *models.User) error {
	return s.updateProfileFn(ctx, u)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "User", Email: "user@example.com"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, u *models.User) error { u.ID = 1; return nil },
		updateProfileFn: func(_ context.Context, _ *models.User) error { return nil },
	}
}

// jobRepoStub is a stub for repository.JobRepository.
type jobRepoStub struct {
	createFn       func(context.Context, *models.Job) error
	getByIDFn      func(context.Context, uint) (*models.Job, error)
	listFn         func(context.Context, uint) ([]models.Job, error)
	updateOwnedFn  func(context.Context, uint, uint, repository.JobPatch) (*models.Job, error)
	deleteOwnedFn  func(context.Context, uint, uint) error
	countByOwnerFn func(context.Context, uint) (int64, error)
}

func (s *jobRepoStub) Create(ctx context.Context, j *models.Job) error { return s.createFn(ctx, j) }
func (s *jobRepoStub) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) List(ctx context.Context, createdBy uint) ([]models.Job, error) {
	return s.listFn(ctx, createdBy)
}
func (s *jobRepoStub) UpdateOwned(ctx context.Context, id, owner uint, p repository.JobPatch) (*models.Job, error) {
	return s.updateOwnedFn(ctx, id, owner, p)
}
func (s *jobRepoStub) DeleteOwned(ctx context.Context, id, owner uint) error {
	return s.deleteOwnedFn(ctx, id, owner)
}
func (s *jobRepoStub) CountByOwner(ctx context.Context, owner uint) (int64, error) {
	return s.countByOwnerFn(ctx, owner)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		createFn: func(_ context.Context, j *models.Job) error { j.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Job, error) {
			return &models.Job{ID: id, Company: "Google", Position: "Frontend Engineer", CreatedBy: 100}, nil
		},
		listFn: func(_ context.Context, _ uint) ([]models.Job, error) { return []models.Job{}, nil },
		updateOwnedFn: func(_ context.Context, id, owner uint, _ repository.JobPatch) (*models.Job, error) {
			return &models.Job{ID: id, CreatedBy: owner}, nil
		},
		deleteOwnedFn:  func(_ context.Context, _, _ uint) error { return nil },
		countByOwnerFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// applicationRepoStub is a stub for repository.ApplicationRepository.
type applicationRepoStub struct {
	createFn          func(context.Context, *models.Application) error
	getByIDFn         func(context.Context, uint) (*models.Application, error)
	listFn            func(context.Context, repository.ApplicationScope) ([]models.Application, error)
	updateStatusFn    func(context.Context, uint, models.ApplicationStatus) error
	statusBreakdownFn func(context.Context, repository.ApplicationScope) (map[string]int64, int64, error)
}

func (s *applicationRepoStub) Create(ctx context.Context, a *models.Application) error {
	return s.createFn(ctx, a)
}
func (s *applicationRepoStub) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDFn(ctx, id)
}
func (s *applicationRepoStub) List(ctx context.Context, scope repository.ApplicationScope) ([]models.Application, error) {
	return s.listFn(ctx, scope)
}
func (s *applicationRepoStub) UpdateStatus(ctx context.Context, id uint, st models.ApplicationStatus) error {
	return s.updateStatusFn(ctx, id, st)
}
func (s *applicationRepoStub) StatusBreakdown(ctx context.Context, scope repository.ApplicationScope) (map[string]int64, int64, error) {
	return s.statusBreakdownFn(ctx, scope)
}

func noopApplicationRepo() *applicationRepoStub {
	return &applicationRepoStub{
		createFn: func(_ context.Context, a *models.Application) error { a.ID = 50; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Application, error) {
			return nil, models.NewNotFoundError("application", id)
		},
		listFn: func(_ context.Context, _ repository.ApplicationScope) ([]models.Application, error) {
			return []models.Application{}, nil
		},
		updateStatusFn: func(_ context.Context, _ uint, _ models.ApplicationStatus) error { return nil },
		statusBreakdownFn: func(_ context.Context, _ repository.ApplicationScope) (map[string]int64, int64, error) {
			return map[string]int64{}, 0, nil
		},
	}
}

// notificationRepoStub records created notifications.
type notificationRepoStub struct {
	mu         sync.Mutex
	created    []models.Notification
	createErr  error
	markReadFn func(context.Context, uint) error
}

func (s *notificationRepoStub) Create(_ context.Context, n *models.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *n)
	return nil
}
func (s *notificationRepoStub) ListByRecipient(_ context.Context, recipientID uint) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Notification{}
	for _, n := range s.created {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id uint) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, id)
	}
	return nil
}

// mailerStub records sent messages and optionally fails.
type mailerStub struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *mailerStub) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// publisherStub records realtime events.
type publisherStub struct {
	mu     sync.Mutex
	events []uint
	err    error
}

func (p *publisherStub) PublishEvent(_ context.Context, userID uint, _ string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, userID)
	return nil
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, models.ErrorCode(err), "unexpected error: %v", err)
}

var (
	recruiterID = models.Identity{UserID: 100, Role: models.RoleRecruiter}
	seekerID    = models.Identity{UserID: 200, Role: models.RoleUser}
)
