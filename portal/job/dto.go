package job

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// CreateJobRequest is the admin "post internship" form payload.
// Requirements arrive as one comma-separated line, the way the form
// collects them.
type CreateJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Salary       string `json:"salary"`
	Type         string `json:"type" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements"`
}

// JobResponse is the listing as the rendering layer sees it: the raw
// timestamp plus the derived display label.
type JobResponse struct {
	ID           kernel.JobID          `json:"id"`
	Title        kernel.JobTitle       `json:"title"`
	Company      string                `json:"company"`
	Location     string                `json:"location"`
	Salary       string                `json:"salary"`
	Type         kernel.JobType        `json:"type"`
	Category     kernel.JobCategory    `json:"category"`
	Description  kernel.JobDescription `json:"description"`
	Requirements []string              `json:"requirements"`
	PostedAt     time.Time             `json:"posted_at"`
	Posted       string                `json:"posted"`
	Logo         string                `json:"logo"`
}

// ToResponse converts a Job entity to its response DTO.
func ToResponse(j *Job, now time.Time) JobResponse {
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Salary:       j.Salary,
		Type:         j.Type,
		Category:     j.Category,
		Description:  j.Description,
		Requirements: j.Requirements,
		PostedAt:     j.PostedAt,
		Posted:       j.PostedLabel(now),
		Logo:         j.Logo,
	}
}
