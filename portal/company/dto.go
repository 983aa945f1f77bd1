package company

// CompanyDraft is the typed partner-registration payload.
type CompanyDraft struct {
	Name          string   `json:"name" validate:"required"`
	Industry      string   `json:"industry" validate:"required"`
	Website       string   `json:"website" validate:"required"`
	RequiredRoles []string `json:"required_roles"`
	Description   string   `json:"description"`
}

// AddCompanyRequest is the short admin partner form.
type AddCompanyRequest struct {
	Name     string `json:"name" validate:"required"`
	Industry string `json:"industry" validate:"required"`
	Website  string `json:"website"`
}
