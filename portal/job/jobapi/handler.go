package jobapi

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/banoqabil/jobhub/portal/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Poster guards the admin listing form behind the session's
// authorization check.
type Poster interface {
	PostJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error)
}

// Handlers provides HTTP handlers for listing operations
type Handlers struct {
	service *jobsrv.JobService
	poster  Poster
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService, poster Poster) *Handlers {
	return &Handlers{
		service: service,
		poster:  poster,
	}
}

// ListJobs retrieves listings, filtered by the optional search term and
// category query parameters
// GET /api/jobs?term=...&category=...
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	term := c.Query("term")
	category := kernel.JobCategory(c.Query("category", string(kernel.CategoryAll)))

	jobs, err := h.service.FilterJobs(c.Context(), term, category)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJobByID retrieves a listing by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListCategories returns the filter sidebar's category catalog
// GET /api/jobs/categories
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

// CreateJob posts a new listing (admin form)
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.poster.PostJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// RegisterRoutes wires the job routes onto the app
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.ListJobs)
	api.Get("/categories", handlers.ListCategories)
	api.Get("/:id", handlers.GetJobByID)
	api.Post("/", handlers.CreateJob)
}
