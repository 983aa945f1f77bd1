package studentinfra

import (
	"context"
	"sync"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/student"
)

// MemoryRepository keeps student profiles in memory, append-only via
// whole-slice replacement.
type MemoryRepository struct {
	mu       sync.RWMutex
	students []student.Student
}

// NewMemoryRepository creates a repository seeded with the given profiles.
func NewMemoryRepository(seed []student.Student) *MemoryRepository {
	students := make([]student.Student, len(seed))
	copy(students, seed)
	return &MemoryRepository{students: students}
}

func (r *MemoryRepository) Add(_ context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]student.Student, len(r.students), len(r.students)+1)
	copy(next, r.students)
	r.students = append(next, *s)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id kernel.StudentID) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.students {
		if r.students[i].ID == id {
			s := r.students[i]
			return &s, nil
		}
	}
	return nil, student.ErrStudentNotFound().WithDetail("student_id", id.String())
}

func (r *MemoryRepository) List(_ context.Context) ([]student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.students, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students), nil
}
