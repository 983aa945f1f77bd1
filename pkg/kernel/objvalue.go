package kernel

type Email string

type Phone string

type JobTitle string

type JobDescription string

type JobCategory string

// CategoryAll is the wildcard category used by the job filter.
const CategoryAll JobCategory = "All"

// JobType classifies the employment arrangement of a listing.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeRemote     JobType = "Remote"
	JobTypeInternship JobType = "Internship"
)

// IsValid reports whether the job type is one of the known arrangements.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship:
		return true
	default:
		return false
	}
}

// Role identifies which portal a signed-in user belongs to.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

// IsValid reports whether the role is one of the three portal roles.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleCompany || r == RoleAdmin
}

// DisplayName returns the human-readable title for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleCompany:
		return "Company"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}
