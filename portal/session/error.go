package session

import (
	"net/http"

	"github.com/banoqabil/jobhub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SESSION")

var (
	CodeInvalidRole       = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Unknown portal role")
	CodeInvalidView       = ErrRegistry.Register("INVALID_VIEW", errx.TypeValidation, http.StatusBadRequest, "Unknown view")
	CodeViewNotAllowed    = ErrRegistry.Register("VIEW_NOT_ALLOWED", errx.TypeAuthorization, http.StatusForbidden, "View not available to the current role")
	CodeNotLoggedIn       = ErrRegistry.Register("NOT_LOGGED_IN", errx.TypeAuthorization, http.StatusUnauthorized, "No active session")
	CodeWrongRole         = ErrRegistry.Register("WRONG_ROLE", errx.TypeAuthorization, http.StatusForbidden, "Operation not available to the current role")
	CodeProfileIncomplete = ErrRegistry.Register("PROFILE_INCOMPLETE", errx.TypeBusiness, http.StatusConflict, "Profile setup has not been completed")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request payload")
)

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrInvalidView() *errx.Error {
	return ErrRegistry.New(CodeInvalidView)
}

func ErrViewNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeViewNotAllowed)
}

func ErrNotLoggedIn() *errx.Error {
	return ErrRegistry.New(CodeNotLoggedIn)
}

func ErrWrongRole() *errx.Error {
	return ErrRegistry.New(CodeWrongRole)
}

func ErrProfileIncomplete() *errx.Error {
	return ErrRegistry.New(CodeProfileIncomplete)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
