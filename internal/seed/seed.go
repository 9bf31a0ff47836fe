package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"careerflow/internal/middleware"
	"careerflow/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	// ExtraJobs generated postings added on top of the fixtures.
	ExtraJobs int
	// Applications is how many of the recruiter's jobs the demo seeker applies to.
	Applications int
}

// Result summarizes what a run left in the database.
type Result struct {
	Recruiter    *models.User
	Seeker       *models.User
	Jobs         []models.Job
	Applications []models.Application
}

// Seeder writes demo data. Re-running it replaces the demo recruiter's jobs.
type Seeder struct {
	db       *gorm.DB
	fixtures *Fixtures
	factory  *Factory
	hashCost int
}

// NewSeeder creates a seeder bound to db using the embedded fixtures.
func NewSeeder(db *gorm.DB) (*Seeder, error) {
	f, err := LoadFixtures()
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, fixtures: f, factory: NewFactory(), hashCost: bcrypt.DefaultCost}, nil
}

// Run seeds users, jobs and optional applications.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if res.Recruiter, err = s.ensureUser(tx, s.fixtures.Recruiter); err != nil {
			return err
		}
		if res.Seeker, err = s.ensureUser(tx, s.fixtures.Seeker); err != nil {
			return err
		}

		// Applications to these jobs go with them.
		if err := tx.Where("created_by = ?", res.Recruiter.ID).Delete(&models.Job{}).Error; err != nil {
			return fmt.Errorf("clear demo jobs: %w", err)
		}

		jobs := make([]models.Job, 0, len(s.fixtures.Jobs)+opts.ExtraJobs)
		for _, j := range s.fixtures.Jobs {
			jobs = append(jobs, j.model(res.Recruiter.ID))
		}
		for i := 0; i < opts.ExtraJobs; i++ {
			jobs = append(jobs, s.factory.Job(res.Recruiter.ID))
		}
		if len(jobs) > 0 {
			if err := tx.CreateInBatches(&jobs, 100).Error; err != nil {
				return fmt.Errorf("create jobs: %w", err)
			}
		}
		res.Jobs = jobs

		n := min(opts.Applications, len(jobs))
		for i := 0; i < n; i++ {
			app := s.factory.Application(&jobs[i], res.Seeker.ID)
			if err := tx.Omit("Job", "Applicant").Create(&app).Error; err != nil {
				return fmt.Errorf("create application: %w", err)
			}
			res.Applications = append(res.Applications, app)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.Logger.Info("database seeded",
		slog.String("recruiter", res.Recruiter.Email),
		slog.String("seeker", res.Seeker.Email),
		slog.Int("jobs", len(res.Jobs)),
		slog.Int("applications", len(res.Applications)),
	)
	return res, nil
}

func (s *Seeder) ensureUser(tx *gorm.DB, f UserFixture) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", f.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find %s: %w", f.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user = models.User{
		Name:     f.Name,
		Email:    f.Email,
		Password: string(hash),
		Role:     f.Role,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", f.Email, err)
	}
	return &user, nil
}
