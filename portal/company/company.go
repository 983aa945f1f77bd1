package company

import (
	"strings"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// Company is a hiring partner profile. Created once at partner
// registration or by the admin; never mutated afterwards.
type Company struct {
	ID            kernel.CompanyID `json:"id"`
	Name          string           `json:"name"`
	Industry      string           `json:"industry"`
	Website       string           `json:"website"`
	Logo          string           `json:"logo"`
	RequiredRoles []string         `json:"required_roles"`
	Description   string           `json:"description,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// NameMatches compares company names the way listings reference them:
// by display name, ignoring case and surrounding space.
func (c *Company) NameMatches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}
