package job

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

type Repository interface {
	// Add appends a new listing. Listings are never updated or removed.
	Add(ctx context.Context, job *Job) error

	// GetByID retrieves a listing by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// List retrieves all listings in insertion order
	List(ctx context.Context) ([]Job, error)

	// Count returns the number of listings
	Count(ctx context.Context) (int, error)
}
