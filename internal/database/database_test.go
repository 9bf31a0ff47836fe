package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"careerflow/internal/config"
	"careerflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{
			name: "discrete settings",
			cfg:  &config.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "careerflow", DBSSLMode: "require"},
			want: "host=db port=5432 user=u password=p dbname=careerflow sslmode=require",
		},
		{
			name: "empty ssl mode defaults to disable",
			cfg:  &config.Config{DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "x"},
			want: "host=localhost port=5432 user=u password=p dbname=x sslmode=disable",
		},
		{
			name: "database url wins",
			cfg:  &config.Config{DatabaseURL: "postgres://u:p@db:5432/careerflow", DBHost: "ignored"},
			want: "postgres://u:p@db:5432/careerflow",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(tt.cfg))
		})
	}
}

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = configurePool(db, &config.Config{DBMaxOpenConns: 10, DBMaxIdleConns: 3, DBConnMaxLifetimeMinutes: 15})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestAutoMigrate_CreatesUniqueApplicationIndex(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	assert.True(t, db.Migrator().HasIndex(&models.Application{}, "idx_applications_job_applicant"))
	assert.True(t, db.Migrator().HasTable(&models.Notification{}))
}

func TestCustomGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(context.Background(), time.Now(), fc, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query error")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Empty(t, buf.String())
}
