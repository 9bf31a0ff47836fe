package service

import (
	"context"
	"fmt"
	"html"

	"careerflow/internal/mailer"
	"careerflow/internal/models"
	"careerflow/internal/notifications"
	"careerflow/internal/observability"
	"careerflow/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// ApplicationService records applications and their status pipeline, and emits
// the notification and email that accompany each change.
type ApplicationService struct {
	apps          repository.ApplicationRepository
	jobs          repository.JobRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	mail          mailer.Mailer
	events        EventPublisher
}

// Stats is the role-scoped analytics summary. TotalJobs is set for recruiters only.
type Stats struct {
	TotalJobs         *int64           `json:"totalJobs,omitempty"`
	TotalApplications int64            `json:"totalApplications"`
	StatusBreakdown   map[string]int64 `json:"statusBreakdown"`
}

func NewApplicationService(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	users repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	mail mailer.Mailer,
	events EventPublisher,
) *ApplicationService {
	return &ApplicationService{
		apps:          apps,
		jobs:          jobs,
		users:         users,
		notifications: notificationRepo,
		mail:          mail,
		events:        events,
	}
}

// Apply creates the caller's application to jobID. A second application to the same job is a Conflict.
func (s *ApplicationService) Apply(ctx context.Context, identity models.Identity, jobID uint) (app *models.Application, err error) {
	ctx, span := observability.StartSpan(ctx, "ApplicationService.Apply",
		attribute.Int64("job.id", int64(jobID)),
		attribute.Int64("user.id", int64(identity.UserID)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if jobID == 0 {
		return nil, models.NewValidationError("jobId is required")
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return nil, &models.AppError{Code: models.CodeNotFound, Message: "Job not found"}
		}
		return nil, err
	}

	app = &models.Application{
		JobID:       job.ID,
		ApplicantID: identity.UserID,
		RecruiterID: job.CreatedBy,
		Status:      models.ApplicationApplied,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if models.ErrorCode(err) == models.CodeConflict {
			observability.DuplicateApplications.Inc()
		}
		return nil, err
	}
	observability.ApplicationsSubmitted.Inc()

	reportDeliveries(ctx, "apply", s.notifyRecruiter(ctx, job, app))
	return app, nil
}

func (s *ApplicationService) notifyRecruiter(ctx context.Context, job *models.Job, app *models.Application) []DeliveryResult {
	applicant, err := s.users.GetByID(ctx, app.ApplicantID)
	if err != nil {
		return []DeliveryResult{{Channel: ChannelNotification, Err: fmt.Errorf("load applicant: %w", err)}}
	}

	results := s.notify(ctx, &models.Notification{
		RecipientID: job.CreatedBy,
		Message:     fmt.Sprintf("New application received for %s from %s", job.Position, applicant.Name),
		Type:        models.NotificationApplicationReceived,
		RelatedID:   app.ID,
	})

	results = append(results, attempt(ChannelEmail, func() error {
		recruiter, err := s.users.GetByID(ctx, job.CreatedBy)
		if err != nil {
			return fmt.Errorf("load recruiter: %w", err)
		}
		return s.mail.Send(ctx, mailer.Message{
			To:      recruiter.Email,
			Subject: fmt.Sprintf("New Application: %s", job.Position),
			Text:    fmt.Sprintf("You have received a new application for %s from %s.", job.Position, applicant.Name),
			HTML: fmt.Sprintf("<p>You have received a new application for <strong>%s</strong> from <strong>%s</strong>.</p>",
				html.EscapeString(job.Position), html.EscapeString(applicant.Name)),
		})
	}))
	return results
}

// notify stores n and, once stored, pushes it to the recipient's sockets.
func (s *ApplicationService) notify(ctx context.Context, n *models.Notification) []DeliveryResult {
	stored := attempt(ChannelNotification, func() error {
		return s.notifications.Create(ctx, n)
	})
	if !stored.Delivered() || s.events == nil {
		return []DeliveryResult{stored}
	}
	return []DeliveryResult{stored, attempt(ChannelRealtime, func() error {
		return s.events.PublishEvent(ctx, n.RecipientID, notifications.EventNotification, n)
	})}
}

// List returns applications against the recruiter's jobs, or the seeker's own, newest first.
func (s *ApplicationService) List(ctx context.Context, identity models.Identity) ([]models.Application, error) {
	return s.apps.List(ctx, scopeFor(identity))
}

// UpdateStatus moves an application to status. Only the recruiter who owns it may do so.
func (s *ApplicationService) UpdateStatus(ctx context.Context, identity models.Identity, id uint, status models.ApplicationStatus) (app *models.Application, err error) {
	ctx, span := observability.StartSpan(ctx, "ApplicationService.UpdateStatus",
		attribute.Int64("application.id", int64(id)),
		attribute.String("application.status", string(status)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if !status.Valid() {
		return nil, models.NewValidationError("Invalid status")
	}
	app, err = s.apps.GetByID(ctx, id)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return nil, &models.AppError{Code: models.CodeNotFound, Message: "Application not found"}
		}
		return nil, err
	}
	if app.RecruiterID != identity.UserID {
		return nil, models.NewForbiddenError("Not authorized")
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, err
	}
	app.Status = status
	observability.ApplicationStatusChanges.WithLabelValues(string(status)).Inc()

	reportDeliveries(ctx, "update_status", s.notifyApplicant(ctx, app))
	return app, nil
}

func (s *ApplicationService) notifyApplicant(ctx context.Context, app *models.Application) []DeliveryResult {
	var position, company string
	if app.Job != nil {
		position, company = app.Job.Position, app.Job.Company
	}

	results := s.notify(ctx, &models.Notification{
		RecipientID: app.ApplicantID,
		Message:     fmt.Sprintf("Your application for %s at %s is now %s", position, company, app.Status),
		Type:        models.NotificationStatusChange,
		RelatedID:   app.ID,
	})

	results = append(results, attempt(ChannelEmail, func() error {
		if app.Applicant == nil || app.Applicant.Email == "" {
			return fmt.Errorf("applicant %d has no email on record", app.ApplicantID)
		}
		return s.mail.Send(ctx, mailer.Message{
			To:      app.Applicant.Email,
			Subject: fmt.Sprintf("Application Update: %s", position),
			Text:    fmt.Sprintf("Your application status has been updated to: %s", app.Status),
			HTML: fmt.Sprintf("<p>Your application for <strong>%s</strong> has been updated to: <strong>%s</strong>.</p>",
				html.EscapeString(position), app.Status),
		})
	}))
	return results
}

// Analytics summarizes the caller's applications. The breakdown omits statuses with no applications.
func (s *ApplicationService) Analytics(ctx context.Context, identity models.Identity) (*Stats, error) {
	breakdown, total, err := s.apps.StatusBreakdown(ctx, scopeFor(identity))
	if err != nil {
		return nil, err
	}
	stats := &Stats{TotalApplications: total, StatusBreakdown: breakdown}
	if identity.IsRecruiter() {
		jobs, err := s.jobs.CountByOwner(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		stats.TotalJobs = &jobs
	}
	return stats, nil
}

func scopeFor(identity models.Identity) repository.ApplicationScope {
	if identity.IsRecruiter() {
		return repository.ApplicationScope{RecruiterID: identity.UserID}
	}
	return repository.ApplicationScope{ApplicantID: identity.UserID}
}
