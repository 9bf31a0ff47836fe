package service

import (
	"context"
	"strings"

	"careerflow/internal/models"
	"careerflow/internal/repository"
)

// JobService manages job postings. Recruiters manage only their own jobs.
type JobService struct {
	jobs repository.JobRepository
}

type CreateJobInput struct {
	Company     string
	Position    string
	Status      models.JobStatus
	JobType     models.JobType
	JobLocation string
}

// UpdateJobInput is a partial update; nil fields are untouched.
type UpdateJobInput struct {
	Company     *string
	Position    *string
	Status      *models.JobStatus
	JobType     *models.JobType
	JobLocation *string
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Create(ctx context.Context, identity models.Identity, in CreateJobInput) (*models.Job, error) {
	if !identity.IsRecruiter() {
		return nil, models.NewForbiddenError("Not authorized to create jobs")
	}
	job := &models.Job{
		Company:     strings.TrimSpace(in.Company),
		Position:    strings.TrimSpace(in.Position),
		Status:      in.Status,
		JobType:     in.JobType,
		JobLocation: strings.TrimSpace(in.JobLocation),
		CreatedBy:   identity.UserID,
	}
	if job.Company == "" || job.Position == "" {
		return nil, models.NewValidationError("Please provide company and position")
	}
	if job.Status == "" {
		job.Status = models.JobStatusPending
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if job.JobLocation == "" {
		job.JobLocation = "my city"
	}
	if !job.Status.Valid() || !job.JobType.Valid() {
		return nil, models.NewValidationError("Invalid job status or type")
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// List returns the recruiter's own jobs, or every job for a seeker, newest first.
func (s *JobService) List(ctx context.Context, identity models.Identity) ([]models.Job, error) {
	var owner uint
	if identity.IsRecruiter() {
		owner = identity.UserID
	}
	return s.jobs.List(ctx, owner)
}

// Update returns NotFound, not Forbidden, when the job belongs to another recruiter.
func (s *JobService) Update(ctx context.Context, identity models.Identity, id uint, in UpdateJobInput) (*models.Job, error) {
	if !identity.IsRecruiter() {
		return nil, models.NewForbiddenError("Not authorized to update jobs")
	}
	if (in.Company != nil && strings.TrimSpace(*in.Company) == "") ||
		(in.Position != nil && strings.TrimSpace(*in.Position) == "") {
		return nil, models.NewValidationError("Company or Position fields cannot be empty")
	}
	if (in.Status != nil && !in.Status.Valid()) || (in.JobType != nil && !in.JobType.Valid()) {
		return nil, models.NewValidationError("Invalid job status or type")
	}
	return s.jobs.UpdateOwned(ctx, id, identity.UserID, repository.JobPatch{
		Company:     trimmed(in.Company),
		Position:    trimmed(in.Position),
		Status:      in.Status,
		JobType:     in.JobType,
		JobLocation: trimmed(in.JobLocation),
	})
}

func (s *JobService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if !identity.IsRecruiter() {
		return models.NewForbiddenError("Not authorized to delete jobs")
	}
	return s.jobs.DeleteOwned(ctx, id, identity.UserID)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
