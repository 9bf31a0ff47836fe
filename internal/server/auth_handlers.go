package server

import (
	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup
// @Summary User signup
// @Description Register a new recruiter or job seeker account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	user, err := s.authSvc().Signup(c.UserContext(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{User: user})
}

// Login handles POST /api/auth/login
// @Summary User login
// @Description Authenticate and return a signed identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	res, err := s.authSvc().Login(c.UserContext(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(res)
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke the bearer token until its expiry
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Not authorized, no token"))
	}

	if err := s.authSvc().Logout(c.UserContext(), token); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Logged out successfully"})
}
