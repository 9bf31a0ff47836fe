package models

import "time"

// JobStatus tracks where a posting is in the recruiter's pipeline.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
	JobStatusOffer     JobStatus = "offer"
)

// JobType describes the engagement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// Job is a posting owned by the recruiter who created it.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Company     string    `gorm:"size:50;not null" json:"company"`
	Position    string    `gorm:"size:100;not null" json:"position"`
	Status      JobStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	JobType     JobType   `gorm:"type:varchar(20);not null;default:full-time" json:"jobType"`
	JobLocation string    `gorm:"not null;default:my city" json:"jobLocation"`
	CreatedBy   uint      `gorm:"not null;index" json:"createdBy"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInterview, JobStatusDeclined, JobStatusOffer:
		return true
	}
	return false
}

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}
