package companyapi

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/company/companysrv"
	"github.com/gofiber/fiber/v2"
)

// Registrar guards the admin partner form behind the session's
// authorization check.
type Registrar interface {
	AddPartner(ctx context.Context, req company.AddCompanyRequest) (*company.Company, error)
}

// Handlers provides HTTP handlers for hiring partners
type Handlers struct {
	service   *companysrv.CompanyService
	registrar Registrar
}

// NewHandlers creates a new company handlers instance
func NewHandlers(service *companysrv.CompanyService, registrar Registrar) *Handlers {
	return &Handlers{
		service:   service,
		registrar: registrar,
	}
}

// ListCompanies retrieves all partners
// GET /api/companies
func (h *Handlers) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.service.ListCompanies(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(companies)
}

// GetCompanyByID retrieves one partner
// GET /api/companies/:id
func (h *Handlers) GetCompanyByID(c *fiber.Ctx) error {
	id := kernel.CompanyID(c.Params("id"))
	if id.IsEmpty() {
		return company.ErrCompanyNotFound().WithDetail("id", "missing or empty")
	}

	found, err := h.service.GetCompanyByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(found)
}

// AddPartner adds a company from the admin form
// POST /api/companies
func (h *Handlers) AddPartner(c *fiber.Ctx) error {
	var req company.AddCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newCompany, err := h.registrar.AddPartner(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCompany)
}

// RegisterRoutes wires the company routes onto the app
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/companies")

	api.Get("/", handlers.ListCompanies)
	api.Get("/:id", handlers.GetCompanyByID)
	api.Post("/", handlers.AddPartner)
}
