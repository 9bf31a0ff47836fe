package models

import "time"

// ApplicationStatus is the only field of an Application that changes after creation.
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterview   ApplicationStatus = "interview"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// ApplicationStatuses lists every valid status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationApplied,
	ApplicationShortlisted,
	ApplicationInterview,
	ApplicationRejected,
	ApplicationHired,
}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application links one seeker to one job. The (job, applicant) pair is unique.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       uint              `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"jobId"`
	ApplicantID uint              `gorm:"not null;uniqueIndex:idx_applications_job_applicant;index" json:"applicantId"`
	RecruiterID uint              `gorm:"not null;index" json:"recruiterId"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:applied" json:"status"`
	Job         *Job              `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	Applicant   *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
