package job

import (
	"strings"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// Job is a single listing on the board. Listings are immutable once
// created; the store only ever appends.
type Job struct {
	ID           kernel.JobID          `json:"id"`
	Title        kernel.JobTitle       `json:"title"`
	Company      string                `json:"company"` // company display name, resolved by lookup
	Location     string                `json:"location"`
	Salary       string                `json:"salary"`
	Type         kernel.JobType        `json:"type"`
	Category     kernel.JobCategory    `json:"category"`
	Description  kernel.JobDescription `json:"description"`
	Requirements []string              `json:"requirements"`
	PostedAt     time.Time             `json:"posted_at"`
	Logo         string                `json:"logo"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// PostedLabel returns the display form of the posting time.
func (j *Job) PostedLabel(now time.Time) string {
	return kernel.FormatRelative(j.PostedAt, now)
}

// MatchesTerm checks a case-insensitive substring match on title or company.
func (j *Job) MatchesTerm(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(string(j.Title)), needle) ||
		strings.Contains(strings.ToLower(j.Company), needle)
}

// MatchesCategory checks the category gate, treating "All" as a wildcard.
func (j *Job) MatchesCategory(category kernel.JobCategory) bool {
	return category == kernel.CategoryAll || j.Category == category
}
