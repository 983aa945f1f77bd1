package companysrv

import (
	"context"
	"fmt"

	"github.com/banoqabil/jobhub/pkg/errx"
	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CompanyService provides business operations for hiring partners
type CompanyService struct {
	companyRepo company.Repository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(companyRepo company.Repository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// CreateFromDraft appends a partner profile built at registration.
func (s *CompanyService) CreateFromDraft(ctx context.Context, draft company.CompanyDraft) (*company.Company, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, company.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	newCompany := &company.Company{
		ID:            kernel.NewCompanyID(kernel.NextEntityID()),
		Name:          draft.Name,
		Industry:      draft.Industry,
		Website:       draft.Website,
		Logo:          logoFor(draft.Name),
		RequiredRoles: student.DedupSkills(draft.RequiredRoles),
		Description:   draft.Description,
	}

	if err := s.companyRepo.Add(ctx, newCompany); err != nil {
		return nil, errx.Wrap(err, "failed to create company", errx.TypeInternal)
	}

	return newCompany, nil
}

// AddPartner appends a minimal partner from the admin form.
func (s *CompanyService) AddPartner(ctx context.Context, req company.AddCompanyRequest) (*company.Company, error) {
	if err := validate.Struct(req); err != nil {
		return nil, company.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	newCompany := &company.Company{
		ID:            kernel.NewCompanyID(kernel.NextEntityID()),
		Name:          req.Name,
		Industry:      req.Industry,
		Website:       req.Website,
		Logo:          logoFor(req.Name),
		RequiredRoles: []string{},
	}

	if err := s.companyRepo.Add(ctx, newCompany); err != nil {
		return nil, errx.Wrap(err, "failed to add partner", errx.TypeInternal)
	}

	return newCompany, nil
}

// GetCompanyByID retrieves a company by ID
func (s *CompanyService) GetCompanyByID(ctx context.Context, id kernel.CompanyID) (*company.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// FindByName retrieves a company by display name
func (s *CompanyService) FindByName(ctx context.Context, name string) (*company.Company, error) {
	return s.companyRepo.FindByName(ctx, name)
}

// ListCompanies retrieves all partners in registration order
func (s *CompanyService) ListCompanies(ctx context.Context) ([]company.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list companies", errx.TypeInternal)
	}
	return companies, nil
}

// CountCompanies returns the number of partners
func (s *CompanyService) CountCompanies(ctx context.Context) (int, error) {
	return s.companyRepo.Count(ctx)
}

func logoFor(name string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", name)
}
