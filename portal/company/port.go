package company

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

type Repository interface {
	// Add appends a new partner profile
	Add(ctx context.Context, c *Company) error

	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id kernel.CompanyID) (*Company, error)

	// FindByName retrieves a company by display name (case-insensitive)
	FindByName(ctx context.Context, name string) (*Company, error)

	// List retrieves all companies in insertion order
	List(ctx context.Context) ([]Company, error)

	// Count returns the number of companies
	Count(ctx context.Context) (int, error)
}
