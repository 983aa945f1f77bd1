package studentsrv

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/errx"
	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// StudentService provides business operations for student profiles
type StudentService struct {
	studentRepo student.Repository
}

// NewStudentService creates a new instance of the student service
func NewStudentService(studentRepo student.Repository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// CreateFromDraft appends a full profile built at profile setup.
func (s *StudentService) CreateFromDraft(ctx context.Context, draft student.StudentDraft) (*student.Student, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, student.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	newStudent := &student.Student{
		ID:             kernel.NewStudentID(kernel.NextEntityID()),
		Name:           draft.Name,
		Email:          kernel.Email(draft.Email),
		Phone:          kernel.Phone(draft.Phone),
		Address:        draft.Address,
		Campus:         draft.Campus,
		Course:         draft.Course,
		Batch:          draft.Batch,
		Skills:         student.DedupSkills(draft.Skills),
		Experiences:    draft.Experiences,
		CourseProjects: draft.CourseProjects,
		GitHub:         draft.GitHub,
		Portfolio:      draft.Portfolio,
		OtherDetails:   draft.OtherDetails,
	}

	if err := s.studentRepo.Add(ctx, newStudent); err != nil {
		return nil, errx.Wrap(err, "failed to create student", errx.TypeInternal)
	}

	return newStudent, nil
}

// Enroll appends a minimal profile from the admin enrollment form.
func (s *StudentService) Enroll(ctx context.Context, req student.EnrollStudentRequest) (*student.Student, error) {
	if err := validate.Struct(req); err != nil {
		return nil, student.ErrInvalidRequest().WithDetail("validation", err.Error())
	}

	newStudent := &student.Student{
		ID:             kernel.NewStudentID(kernel.NextEntityID()),
		Name:           req.Name,
		Email:          kernel.Email(req.Email),
		Course:         req.Course,
		Batch:          req.Batch,
		Campus:         "Main Campus",
		Skills:         []string{},
		CourseProjects: []student.CourseProject{},
	}

	if err := s.studentRepo.Add(ctx, newStudent); err != nil {
		return nil, errx.Wrap(err, "failed to enroll student", errx.TypeInternal)
	}

	return newStudent, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id kernel.StudentID) (*student.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves the talent directory in enrollment order
func (s *StudentService) ListStudents(ctx context.Context) ([]student.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list students", errx.TypeInternal)
	}
	return students, nil
}

// CountStudents returns the number of enrolled students
func (s *StudentService) CountStudents(ctx context.Context) (int, error) {
	return s.studentRepo.Count(ctx)
}
