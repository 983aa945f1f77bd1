package jobinfra

import (
	"context"
	"sync"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/job"
)

// MemoryRepository keeps listings in memory for the lifetime of the
// process. Mutation is append-only via whole-slice replacement, so
// readers holding an earlier snapshot never observe a partial write.
type MemoryRepository struct {
	mu   sync.RWMutex
	jobs []job.Job
}

// NewMemoryRepository creates a repository seeded with the given listings.
func NewMemoryRepository(seed []job.Job) *MemoryRepository {
	jobs := make([]job.Job, len(seed))
	copy(jobs, seed)
	return &MemoryRepository{jobs: jobs}
}

func (r *MemoryRepository) Add(_ context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]job.Job, len(r.jobs), len(r.jobs)+1)
	copy(next, r.jobs)
	r.jobs = append(next, *j)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
}

func (r *MemoryRepository) List(_ context.Context) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.jobs, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs), nil
}
