package server

import (
	"careerflow/internal/models"
	"careerflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsResponse is the body of GET /api/applications/analytics.
type StatsResponse struct {
	Stats *service.Stats `json:"stats"`
}

// Apply handles POST /api/applications
// @Summary Apply to a job
// @Description Records the caller's application. Applying twice to the same job fails with 400.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Job to apply to"
// @Success 201 {object} ApplicationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (s *Server) Apply(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	var req ApplyRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	app, err := s.applicationSvc().Apply(c.UserContext(), identity, req.JobID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ApplicationResponse{
		Message:     "Application submitted successfully",
		Application: app,
	})
}

// ListApplications handles GET /api/applications
// @Summary List applications
// @Description Recruiters see applications to their jobs, job seekers see their own. Newest first.
// @Tags applications
// @Produce json
// @Success 200 {object} ApplicationListResponse
// @Security BearerAuth
// @Router /applications [get]
func (s *Server) ListApplications(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	apps, err := s.applicationSvc().List(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}
	if apps == nil {
		apps = []models.Application{}
	}

	return c.JSON(ApplicationListResponse{Applications: apps})
}

// UpdateApplicationStatus handles PATCH /api/applications/:id/status
// @Summary Move an application through the pipeline
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/status [patch]
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	app, err := s.applicationSvc().UpdateStatus(c.UserContext(), identity, id, models.ApplicationStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(ApplicationResponse{
		Message:     "Status updated",
		Application: app,
	})
}

// GetAnalytics handles GET /api/applications/analytics
// @Summary Application analytics
// @Description Totals and a per-status histogram scoped to the caller's role
// @Tags applications
// @Produce json
// @Success 200 {object} StatsResponse
// @Security BearerAuth
// @Router /applications/analytics [get]
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	stats, err := s.applicationSvc().Analytics(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(StatsResponse{Stats: stats})
}
