package companyinfra

import (
	"context"
	"sync"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
)

// MemoryRepository keeps partner profiles in memory, append-only via
// whole-slice replacement.
type MemoryRepository struct {
	mu        sync.RWMutex
	companies []company.Company
}

// NewMemoryRepository creates a repository seeded with the given partners.
func NewMemoryRepository(seed []company.Company) *MemoryRepository {
	companies := make([]company.Company, len(seed))
	copy(companies, seed)
	return &MemoryRepository{companies: companies}
}

func (r *MemoryRepository) Add(_ context.Context, c *company.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]company.Company, len(r.companies), len(r.companies)+1)
	copy(next, r.companies)
	r.companies = append(next, *c)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id kernel.CompanyID) (*company.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.companies {
		if r.companies[i].ID == id {
			c := r.companies[i]
			return &c, nil
		}
	}
	return nil, company.ErrCompanyNotFound().WithDetail("company_id", id.String())
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*company.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.companies {
		if r.companies[i].NameMatches(name) {
			c := r.companies[i]
			return &c, nil
		}
	}
	return nil, company.ErrCompanyNotFound().WithDetail("name", name)
}

func (r *MemoryRepository) List(_ context.Context) ([]company.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.companies, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.companies), nil
}
