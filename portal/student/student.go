package student

import (
	"github.com/banoqabil/jobhub/pkg/kernel"
	mapset "github.com/deckarep/golang-set/v2"
)

// CourseProject is one portfolio entry on a student's CV.
type CourseProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Student is a graduate profile. Created once at profile setup or by the
// admin; the id is assigned at creation and never reused.
type Student struct {
	ID             kernel.StudentID `json:"id"`
	Name           string           `json:"name"`
	Email          kernel.Email     `json:"email"`
	Phone          kernel.Phone     `json:"phone"`
	Address        string           `json:"address"`
	Campus         string           `json:"campus"`
	Course         string           `json:"course"`
	Batch          string           `json:"batch"`
	Skills         []string         `json:"skills"`
	Experiences    string           `json:"experiences"`
	CourseProjects []CourseProject  `json:"course_projects"`
	GitHub         string           `json:"github,omitempty"`
	Portfolio      string           `json:"portfolio,omitempty"`
	OtherDetails   string           `json:"other_details,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasSkill checks for an exact skill entry.
func (s *Student) HasSkill(skill string) bool {
	for _, have := range s.Skills {
		if have == skill {
			return true
		}
	}
	return false
}

// DedupSkills removes duplicate skill entries while preserving the order
// in which they were first added.
func DedupSkills(skills []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	deduped := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if seen.Add(skill) {
			deduped = append(deduped, skill)
		}
	}
	return deduped
}
