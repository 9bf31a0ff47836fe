package server

import (
	"careerflow/internal/models"
	"careerflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListJobs handles GET /api/jobs
// @Summary List jobs
// @Description Recruiters see their own postings, job seekers see every posting. Newest first.
// @Tags jobs
// @Produce json
// @Success 200 {object} JobListResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /jobs [get]
func (s *Server) ListJobs(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	jobs, err := s.jobSvc().List(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return c.JSON(JobListResponse{Jobs: jobs, Count: len(jobs)})
}

// CreateJob handles POST /api/jobs
// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job posting"
// @Success 201 {object} JobResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (s *Server) CreateJob(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	var req CreateJobRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	job, err := s.jobSvc().Create(c.UserContext(), identity, service.CreateJobInput{
		Company:     req.Company,
		Position:    req.Position,
		Status:      models.JobStatus(req.Status),
		JobType:     models.JobType(req.JobType),
		JobLocation: req.JobLocation,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(JobResponse{Job: job})
}

// UpdateJob handles PATCH /api/jobs/:id
// @Summary Update job
// @Description Partial update of a job owned by the caller. Jobs owned by other recruiters are reported as not found.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} JobResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [patch]
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdateJobRequest
	if err := bindJSON(c, &req); err != nil {
		return nil
	}

	in := service.UpdateJobInput{
		Company:     req.Company,
		Position:    req.Position,
		JobLocation: req.JobLocation,
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		in.Status = &status
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		in.JobType = &jobType
	}

	job, err := s.jobSvc().Update(c.UserContext(), identity, id, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(JobResponse{Job: job})
}

// DeleteJob handles DELETE /api/jobs/:id
// @Summary Delete job
// @Description Deletes a job owned by the caller together with its applications
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.jobSvc().Delete(c.UserContext(), identity, id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Job deleted successfully"})
}
