package chat

import (
	"net/http"

	"github.com/banoqabil/jobhub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CHAT")

var (
	CodeThreadNotFound = ErrRegistry.Register("THREAD_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Conversation thread not found")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request payload")
)

func ErrThreadNotFound() *errx.Error {
	return ErrRegistry.New(CodeThreadNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
