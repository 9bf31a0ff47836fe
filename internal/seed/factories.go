package seed

import (
	"fmt"

	"careerflow/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	jobStatuses = []string{
		string(models.JobStatusPending),
		string(models.JobStatusInterview),
		string(models.JobStatusDeclined),
		string(models.JobStatusOffer),
	}
	jobTypes = []string{
		string(models.JobTypeFullTime),
		string(models.JobTypePartTime),
		string(models.JobTypeRemote),
		string(models.JobTypeInternship),
	}
)

// Factory builds random but valid domain entities. It does not persist them.
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory returns a Factory with a time-seeded generator.
func NewFactory() *Factory {
	return &Factory{faker: gofakeit.New(0)}
}

// NewFactoryWithSeed returns a deterministic Factory.
func NewFactoryWithSeed(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// Job builds a posting owned by ownerID.
func (f *Factory) Job(ownerID uint) models.Job {
	return models.Job{
		Company:     f.faker.Company(),
		Position:    f.faker.JobTitle(),
		Status:      models.JobStatus(f.faker.RandomString(jobStatuses)),
		JobType:     models.JobType(f.faker.RandomString(jobTypes)),
		JobLocation: fmt.Sprintf("%s, %s", f.faker.City(), f.faker.StateAbr()),
		CreatedBy:   ownerID,
	}
}

// Application builds an application by applicantID to job at a random pipeline stage.
func (f *Factory) Application(job *models.Job, applicantID uint) models.Application {
	statuses := make([]string, len(models.ApplicationStatuses))
	for i, s := range models.ApplicationStatuses {
		statuses[i] = string(s)
	}
	return models.Application{
		JobID:       job.ID,
		ApplicantID: applicantID,
		RecruiterID: job.CreatedBy,
		Status:      models.ApplicationStatus(f.faker.RandomString(statuses)),
	}
}
