package studentapi

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/banoqabil/jobhub/portal/student/studentsrv"
	"github.com/gofiber/fiber/v2"
)

// Enroller guards the admin enrollment form behind the session's
// authorization check.
type Enroller interface {
	EnrollStudent(ctx context.Context, req student.EnrollStudentRequest) (*student.Student, error)
}

// Handlers provides HTTP handlers for the talent directory
type Handlers struct {
	service  *studentsrv.StudentService
	enroller Enroller
}

// NewHandlers creates a new student handlers instance
func NewHandlers(service *studentsrv.StudentService, enroller Enroller) *Handlers {
	return &Handlers{
		service:  service,
		enroller: enroller,
	}
}

// ListStudents retrieves the talent directory
// GET /api/students
func (h *Handlers) ListStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(students)
}

// GetStudentByID retrieves one CV
// GET /api/students/:id
func (h *Handlers) GetStudentByID(c *fiber.Ctx) error {
	id := kernel.StudentID(c.Params("id"))
	if id.IsEmpty() {
		return student.ErrStudentNotFound().WithDetail("id", "missing or empty")
	}

	s, err := h.service.GetStudentByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(s)
}

// EnrollStudent adds a student from the admin form
// POST /api/students
func (h *Handlers) EnrollStudent(c *fiber.Ctx) error {
	var req student.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return student.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newStudent, err := h.enroller.EnrollStudent(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newStudent)
}

// RegisterRoutes wires the student routes onto the app
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/students")

	api.Get("/", handlers.ListStudents)
	api.Get("/:id", handlers.GetStudentByID)
	api.Post("/", handlers.EnrollStudent)
}
