package jobsrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/banoqabil/jobhub/pkg/errx"
	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JobService provides business operations for listings
type JobService struct {
	jobRepo    job.Repository
	categories []kernel.JobCategory
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, categories []kernel.JobCategory) *JobService {
	return &JobService{
		jobRepo:    jobRepo,
		categories: categories,
	}
}

// CreateJob posts a new listing from the admin form. Missing salary and
// logo fall back to the portal defaults.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, job.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	jobType := kernel.JobType(req.Type)
	if !jobType.IsValid() {
		return nil, job.ErrInvalidJobType().WithDetail("type", req.Type)
	}

	salary := req.Salary
	if salary == "" {
		salary = "Competitive"
	}

	logo := fmt.Sprintf("https://picsum.photos/seed/%s/100/100", req.Company)

	newJob := &job.Job{
		ID:           kernel.NewJobID(kernel.NextEntityID()),
		Title:        kernel.JobTitle(req.Title),
		Company:      req.Company,
		Location:     req.Location,
		Salary:       salary,
		Type:         jobType,
		Category:     kernel.JobCategory(req.Category),
		Description:  kernel.JobDescription(req.Description),
		Requirements: splitRequirements(req.Requirements),
		PostedAt:     time.Now(),
		Logo:         logo,
	}

	if err := s.jobRepo.Add(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a listing by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := job.ToResponse(jobEntity, time.Now())
	return &resp, nil
}

// ListJobs retrieves every listing in insertion order
func (s *JobService) ListJobs(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return s.toResponses(jobs), nil
}

// FilterJobs retrieves listings matching the search term and category
func (s *JobService) FilterJobs(ctx context.Context, term string, category kernel.JobCategory) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to filter jobs", errx.TypeInternal)
	}
	if category == "" {
		category = kernel.CategoryAll
	}
	return s.toResponses(job.Filter(jobs, term, category)), nil
}

// CountJobs returns the number of active listings
func (s *JobService) CountJobs(ctx context.Context) (int, error) {
	return s.jobRepo.Count(ctx)
}

// Categories returns the fixed category catalog shown in the filter sidebar
func (s *JobService) Categories() []kernel.JobCategory {
	return s.categories
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *JobService) toResponses(jobs []job.Job) []job.JobResponse {
	now := time.Now()
	responses := make([]job.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, job.ToResponse(&jobs[i], now))
	}
	return responses
}

// splitRequirements turns the comma-separated form line into the ordered
// requirement list, dropping empty fragments.
func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	reqs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			reqs = append(reqs, trimmed)
		}
	}
	return reqs
}
