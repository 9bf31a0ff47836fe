package repository

import (
	"context"
	"errors"
	"time"

	"careerflow/internal/models"
	"careerflow/internal/observability"

	"gorm.io/gorm"
)

// JobPatch carries the fields of an update; nil fields are left unchanged.
type JobPatch struct {
	Company     *string
	Position    *string
	Status      *models.JobStatus
	JobType     *models.JobType
	JobLocation *string
}

func (p JobPatch) columns() map[string]any {
	cols := map[string]any{"updated_at": time.Now()}
	if p.Company != nil {
		cols["company"] = *p.Company
	}
	if p.Position != nil {
		cols["position"] = *p.Position
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.JobType != nil {
		cols["job_type"] = *p.JobType
	}
	if p.JobLocation != nil {
		cols["job_location"] = *p.JobLocation
	}
	return cols
}

// JobRepository defines persistence operations for job postings.
// Mutations take the owner id and fold it into the lookup, so a job owned by someone else is indistinguishable from a missing one.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	List(ctx context.Context, createdBy uint) ([]models.Job, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, patch JobPatch) (*models.Job, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) error
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	defer observability.TrackQuery("create", "jobs")()
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	defer observability.TrackQuery("get_by_id", "jobs")()
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("job", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

// List returns jobs newest first. createdBy == 0 lists every job.
func (r *jobRepository) List(ctx context.Context, createdBy uint) ([]models.Job, error) {
	defer observability.TrackQuery("list", "jobs")()
	q := r.db.WithContext(ctx).Model(&models.Job{})
	if createdBy != 0 {
		q = q.Where("created_by = ?", createdBy)
	}
	jobs := []models.Job{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) UpdateOwned(ctx context.Context, id, ownerID uint, patch JobPatch) (*models.Job, error) {
	defer observability.TrackQuery("update_owned", "jobs")()
	var job models.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).
			Where("id = ? AND created_by = ?", id, ownerID).
			Updates(patch.columns())
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("job", id)
		}
		if err := tx.Where("id = ? AND created_by = ?", id, ownerID).First(&job).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("job", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	defer observability.TrackQuery("delete_owned", "jobs")()
	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&models.Job{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("job", id)
	}
	return nil
}

func (r *jobRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	defer observability.TrackQuery("count_by_owner", "jobs")()
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Where("created_by = ?", ownerID).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
