package repository

import (
	"context"
	"errors"

	"careerflow/internal/cache"
	"careerflow/internal/models"
	"careerflow/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads through the user cache. The cached copy never carries the password hash.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		defer observability.TrackQuery("get_by_id", "users")()
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("user", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil, nil when no user has the email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer observability.TrackQuery("get_by_email", "users")()
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("create", "users")()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateProfile writes the editable profile columns only; password and role are never touched.
func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("update_profile", "users")()
	res := r.db.WithContext(ctx).
		Model(&models.User{ID: user.ID}).
		Select("name", "email", "bio", "skills", "experience", "resume").
		Updates(user)
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return models.NewValidationError("Email already in use")
		}
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("user", user.ID)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}
