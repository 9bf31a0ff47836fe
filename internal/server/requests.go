package server

import "careerflow/internal/models"

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=72"`
	Role     string `json:"role" validate:"omitempty,role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateJobRequest is the body of POST /api/jobs.
type CreateJobRequest struct {
	Company     string `json:"company" validate:"max=50"`
	Position    string `json:"position" validate:"max=100"`
	Status      string `json:"status" validate:"omitempty,jobstatus"`
	JobType     string `json:"jobType" validate:"omitempty,jobtype"`
	JobLocation string `json:"jobLocation" validate:"max=200"`
}

// UpdateJobRequest is the body of PATCH /api/jobs/:id. Absent fields are left untouched.
type UpdateJobRequest struct {
	Company     *string `json:"company" validate:"omitempty,max=50"`
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Status      *string `json:"status" validate:"omitempty,jobstatus"`
	JobType     *string `json:"jobType" validate:"omitempty,jobtype"`
	JobLocation *string `json:"jobLocation" validate:"omitempty,max=200"`
}

// ApplyRequest is the body of POST /api/applications.
type ApplyRequest struct {
	JobID uint `json:"jobId" validate:"required"`
}

// UpdateStatusRequest is the body of PATCH /api/applications/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,appstatus"`
}

// UpdateProfileRequest is the JSON form of PATCH /api/users/profile.
// Multipart requests carry the same fields as form values.
type UpdateProfileRequest struct {
	Name       *string `json:"name" form:"name" validate:"omitempty,max=100"`
	Email      *string `json:"email" form:"email" validate:"omitempty,max=254"`
	Bio        *string `json:"bio" form:"bio" validate:"omitempty,max=2000"`
	Skills     *string `json:"skills" form:"skills" validate:"omitempty,max=2000"`
	Experience *string `json:"experience" form:"experience" validate:"omitempty,max=5000"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse wraps a user summary.
type UserResponse struct {
	User *models.User `json:"user"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job *models.Job `json:"job"`
}

// JobListResponse is the body of GET /api/jobs.
type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Count int          `json:"count"`
}

// ApplicationResponse wraps a single application with an acknowledgement.
type ApplicationResponse struct {
	Message     string              `json:"message,omitempty"`
	Application *models.Application `json:"application"`
}

// ApplicationListResponse is the body of GET /api/applications.
type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
}

// NotificationListResponse is the body of GET /api/applications/notifications.
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
}
