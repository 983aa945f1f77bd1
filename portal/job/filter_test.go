package job

import (
	"testing"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/stretchr/testify/assert"
)

func sampleJobs() []Job {
	return []Job{
		{ID: "1", Title: "Frontend React Developer", Company: "TechFlow Solutions", Category: "Software Development"},
		{ID: "2", Title: "Digital Marketing Intern", Company: "Skyline Agency", Category: "Marketing"},
		{ID: "3", Title: "UI/UX Designer", Company: "Creative Labs", Category: "Design"},
		{ID: "4", Title: "Python Developer", Company: "DataGen Systems", Category: "Data Science"},
	}
}

func TestFilter_IdentityWhenUnconstrained(t *testing.T) {
	jobs := sampleJobs()
	got := Filter(jobs, "", kernel.CategoryAll)
	assert.Equal(t, jobs, got)
}

func TestFilter_TermMatchesTitleOrCompany(t *testing.T) {
	jobs := sampleJobs()

	tests := []struct {
		name     string
		term     string
		category kernel.JobCategory
		wantIDs  []kernel.JobID
	}{
		{
			name:     "case-insensitive title match",
			term:     "react",
			category: kernel.CategoryAll,
			wantIDs:  []kernel.JobID{"1"},
		},
		{
			name:     "company match",
			term:     "skyline",
			category: kernel.CategoryAll,
			wantIDs:  []kernel.JobID{"2"},
		},
		{
			name:     "term shared across title and company",
			term:     "dev",
			category: kernel.CategoryAll,
			wantIDs:  []kernel.JobID{"1", "4"},
		},
		{
			name:     "category gate combines with term",
			term:     "developer",
			category: "Data Science",
			wantIDs:  []kernel.JobID{"4"},
		},
		{
			name:     "category alone",
			term:     "",
			category: "Design",
			wantIDs:  []kernel.JobID{"3"},
		},
		{
			name:     "no match yields empty, not nil",
			term:     "blockchain",
			category: kernel.CategoryAll,
			wantIDs:  []kernel.JobID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(jobs, tt.term, tt.category)
			gotIDs := make([]kernel.JobID, 0, len(got))
			for _, j := range got {
				gotIDs = append(gotIDs, j.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilter_ResultIsSubsetInInputOrder(t *testing.T) {
	jobs := sampleJobs()
	got := Filter(jobs, "e", kernel.CategoryAll)

	assert.LessOrEqual(t, len(got), len(jobs))
	lastIdx := -1
	for _, g := range got {
		found := false
		for i, j := range jobs {
			if j.ID == g.ID {
				assert.Greater(t, i, lastIdx, "filter must preserve input order")
				lastIdx = i
				found = true
				break
			}
		}
		assert.True(t, found, "filter must not invent jobs")
	}
}
