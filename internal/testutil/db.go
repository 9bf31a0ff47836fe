// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"careerflow/internal/database"
	"careerflow/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with the full schema applied.
// Foreign keys are enforced so cascades behave as they do on Postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateUser inserts a user with the given role and a unique email.
func CreateUser(t testing.TB, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", strings.ToLower(strings.ReplaceAll(name, " ", ".")), dbSeq.Add(1)),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateJob inserts a full-time pending job owned by ownerID.
func CreateJob(t testing.TB, db *gorm.DB, ownerID uint, company, position string) *models.Job {
	t.Helper()
	j := &models.Job{
		Company:     company,
		Position:    position,
		Status:      models.JobStatusPending,
		JobType:     models.JobTypeFullTime,
		JobLocation: "Bangalore, KA",
		CreatedBy:   ownerID,
	}
	require.NoError(t, db.Create(j).Error)
	return j
}
