package student

// StudentDraft is the typed profile-setup payload. It carries everything
// the student form collects; the service assigns the id.
type StudentDraft struct {
	Name           string          `json:"name" validate:"required"`
	Email          string          `json:"email" validate:"required,email"`
	Phone          string          `json:"phone" validate:"required"`
	Address        string          `json:"address"`
	Campus         string          `json:"campus" validate:"required"`
	Course         string          `json:"course" validate:"required"`
	Batch          string          `json:"batch" validate:"required"`
	Skills         []string        `json:"skills"`
	Experiences    string          `json:"experiences"`
	CourseProjects []CourseProject `json:"course_projects"`
	GitHub         string          `json:"github"`
	Portfolio      string          `json:"portfolio"`
	OtherDetails   string          `json:"other_details"`
}

// EnrollStudentRequest is the short admin enrollment form. Fields the form
// does not collect get portal defaults.
type EnrollStudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course"`
	Batch  string `json:"batch"`
}
