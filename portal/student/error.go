package student

import (
	"net/http"

	"github.com/banoqabil/jobhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("STUDENT")

// Error codes
var (
	CodeStudentNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Student not found")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid student request")
)

// Helper functions
func ErrStudentNotFound() *errx.Error {
	return ErrRegistry.New(CodeStudentNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
