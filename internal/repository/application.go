package repository

import (
	"context"
	"errors"

	"careerflow/internal/models"
	"careerflow/internal/observability"

	"gorm.io/gorm"
)

// ErrDuplicateApplication is wrapped by the conflict returned when an applicant applies to the same job twice.
var ErrDuplicateApplication = errors.New("duplicate application")

// ApplicationScope restricts application queries to one side of the relationship.
// Exactly one of the ids is expected to be set.
type ApplicationScope struct {
	RecruiterID uint
	ApplicantID uint
}

func (s ApplicationScope) apply(db *gorm.DB) *gorm.DB {
	if s.RecruiterID != 0 {
		db = db.Where("recruiter_id = ?", s.RecruiterID)
	}
	if s.ApplicantID != 0 {
		db = db.Where("applicant_id = ?", s.ApplicantID)
	}
	return db
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	List(ctx context.Context, scope ApplicationScope) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error
	StatusBreakdown(ctx context.Context, scope ApplicationScope) (map[string]int64, int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create relies on the (job_id, applicant_id) unique index to reject duplicates, so two racing applies yield exactly one row.
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	defer observability.TrackQuery("create", "applications")()
	if err := r.db.WithContext(ctx).Omit("Job", "Applicant").Create(app).Error; err != nil {
		if isUniqueConstraintError(err) {
			conflict := models.NewConflictError("You have already applied for this job")
			conflict.Err = ErrDuplicateApplication
			return conflict
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	defer observability.TrackQuery("get_by_id", "applications")()
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

// List returns applications newest first, with the job summary and applicant contact preloaded.
func (r *applicationRepository) List(ctx context.Context, scope ApplicationScope) ([]models.Application, error) {
	defer observability.TrackQuery("list", "applications")()
	apps := []models.Application{}
	err := scope.apply(r.db.WithContext(ctx).Model(&models.Application{})).
		Preload("Job", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "company", "position", "job_location", "status")
		}).
		Preload("Applicant", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "resume")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	defer observability.TrackQuery("update_status", "applications")()
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("application", id)
	}
	return nil
}

type statusCount struct {
	Status string
	Count  int64
}

// StatusBreakdown counts applications per status within scope and returns the total alongside.
// Statuses with no applications are absent from the map.
func (r *applicationRepository) StatusBreakdown(ctx context.Context, scope ApplicationScope) (map[string]int64, int64, error) {
	defer observability.TrackQuery("status_breakdown", "applications")()
	var rows []statusCount
	err := scope.apply(r.db.WithContext(ctx).Model(&models.Application{})).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	breakdown := make(map[string]int64, len(rows))
	var total int64
	for _, row := range rows {
		breakdown[row.Status] = row.Count
		total += row.Count
	}
	return breakdown, total, nil
}
