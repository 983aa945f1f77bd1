package student

import (
	"context"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

type Repository interface {
	// Add appends a new student profile
	Add(ctx context.Context, s *Student) error

	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id kernel.StudentID) (*Student, error)

	// List retrieves all students in insertion order
	List(ctx context.Context) ([]Student, error)

	// Count returns the number of students
	Count(ctx context.Context) (int, error)
}
