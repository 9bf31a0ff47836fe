package server

import (
	"mime/multipart"
	"strings"

	"careerflow/internal/models"
	"careerflow/internal/service"
	"careerflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const resumeFormField = "resume"

// GetProfile handles GET /api/users/profile
// @Summary Get my profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	user, err := s.profileSvc().Get(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PATCH /api/users/profile
// @Summary Update my profile
// @Description Accepts JSON or multipart/form-data. A multipart request may attach a resume (.pdf, .doc, .docx).
// @Tags users
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body UpdateProfileRequest false "Profile fields"
// @Param resume formData file false "Resume file"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [patch]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	var (
		req    UpdateProfileRequest
		resume *service.Upload
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid multipart form"))
		}
		req = profileFromForm(form)

		if files := form.File[resumeFormField]; len(files) > 0 {
			fh := files[0]
			f, err := fh.Open()
			if err != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Unable to read resume upload"))
			}
			defer func() { _ = f.Close() }()
			resume = &service.Upload{Filename: fh.Filename, Size: fh.Size, File: f}
		}

		if err := validation.Struct(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
	} else if len(c.Body()) > 0 {
		if err := bindJSON(c, &req); err != nil {
			return nil
		}
	}

	user, err := s.profileSvc().Update(c.UserContext(), identity, service.ProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Experience: req.Experience,
	}, resume)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// profileFromForm keeps the distinction between absent and empty form values.
func profileFromForm(form *multipart.Form) UpdateProfileRequest {
	value := func(key string) *string {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			return &v
		}
		return nil
	}
	return UpdateProfileRequest{
		Name:       value("name"),
		Email:      value("email"),
		Bio:        value("bio"),
		Skills:     value("skills"),
		Experience: value("experience"),
	}
}
