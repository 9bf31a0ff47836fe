// Package seed provides demo data for development databases: a recruiter with
// a set of fixture jobs, a job seeker, and optional generated postings.
package seed

import (
	_ "embed"
	"fmt"

	"careerflow/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// UserFixture is a demo account. Password is stored hashed.
type UserFixture struct {
	Name     string      `yaml:"name"`
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Role     models.Role `yaml:"role"`
}

// JobFixture is a posting created for the demo recruiter.
type JobFixture struct {
	Company     string           `yaml:"company"`
	Position    string           `yaml:"position"`
	Status      models.JobStatus `yaml:"status"`
	JobType     models.JobType   `yaml:"jobType"`
	JobLocation string           `yaml:"jobLocation"`
}

// Fixtures is the embedded demo data set.
type Fixtures struct {
	Recruiter UserFixture  `yaml:"recruiter"`
	Seeker    UserFixture  `yaml:"seeker"`
	Jobs      []JobFixture `yaml:"jobs"`
}

// LoadFixtures decodes the embedded fixtures and checks their enum values.
func LoadFixtures() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for _, u := range []UserFixture{f.Recruiter, f.Seeker} {
		if !u.Role.Valid() {
			return nil, fmt.Errorf("fixture user %s: invalid role %q", u.Email, u.Role)
		}
	}
	for i, j := range f.Jobs {
		if !j.Status.Valid() || !j.JobType.Valid() {
			return nil, fmt.Errorf("fixture job %d (%s): invalid status or type", i, j.Company)
		}
	}
	return &f, nil
}

func (j JobFixture) model(ownerID uint) models.Job {
	return models.Job{
		Company:     j.Company,
		Position:    j.Position,
		Status:      j.Status,
		JobType:     j.JobType,
		JobLocation: j.JobLocation,
		CreatedBy:   ownerID,
	}
}
