package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/repository"
	"careerflow/internal/validation"
)

type ProfileService struct {
	users   repository.UserRepository
	resumes ResumeStore
}

// ProfileInput carries the editable profile fields; nil fields are untouched.
type ProfileInput struct {
	Name       *string
	Email      *string
	Bio        *string
	Skills     *string
	Experience *string
}

func NewProfileService(users repository.UserRepository, resumes ResumeStore) *ProfileService {
	return &ProfileService{users: users, resumes: resumes}
}

func (s *ProfileService) Get(ctx context.Context, identity models.Identity) (*models.User, error) {
	return s.users.GetByID(ctx, identity.UserID)
}

// Update applies the provided fields and, when resume is non-nil, stores it and replaces the resume path.
// A resume stored for a failed update is removed again. The previous resume file is left on disk.
func (s *ProfileService) Update(ctx context.Context, identity models.Identity, in ProfileInput, resume *Upload) (*models.User, error) {
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		user.Name = name
	}
	if in.Email != nil {
		email := validation.NormalizeEmail(*in.Email)
		if err := validation.ValidateEmail(email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = email
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Skills != nil {
		user.Skills = *in.Skills
	}
	if in.Experience != nil {
		user.Experience = *in.Experience
	}

	var stored string
	if resume != nil {
		if s.resumes == nil {
			return nil, models.NewValidationError("Resume uploads are not enabled")
		}
		p, err := s.resumes.Save(ctx, *resume)
		if err != nil {
			return nil, err
		}
		stored = p
		user.Resume = p
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if stored != "" {
			s.discardResume(stored)
		}
		return nil, err
	}
	return user, nil
}

// discardResume removes a resume whose profile write failed. It runs detached
// from the request context so a cancelled request still cleans up.
func (s *ProfileService) discardResume(publicPath string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.resumes.Remove(ctx, publicPath); err != nil {
		middleware.Logger.Warn("failed to remove orphaned resume",
			slog.String("path", publicPath), slog.String("error", err.Error()))
	}
}
