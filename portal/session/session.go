package session

import (
	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/student"
)

// ViewState names a portal screen.
type ViewState string

const (
	ViewLogin         ViewState = "LOGIN"
	ViewProfileSetup  ViewState = "PROFILE_SETUP"
	ViewHome          ViewState = "HOME"
	ViewJobDetails    ViewState = "JOB_DETAILS"
	ViewAdmin         ViewState = "ADMIN"
	ViewCompanyPortal ViewState = "COMPANY_PORTAL"
	ViewStudentCV     ViewState = "STUDENT_CV"
	ViewMessages      ViewState = "MESSAGES"
)

// IsValid reports whether the view names a known screen.
func (v ViewState) IsValid() bool {
	switch v {
	case ViewLogin, ViewProfileSetup, ViewHome, ViewJobDetails,
		ViewAdmin, ViewCompanyPortal, ViewStudentCV, ViewMessages:
		return true
	default:
		return false
	}
}

// Session is the explicit state record of the one in-process sitting.
// LOGIN is both the initial view and the one reached again at teardown.
type Session struct {
	LoggedIn bool
	Role     kernel.Role
	View     ViewState

	// ActorID starts as a throwaway session-scoped id minted at login and
	// is replaced by the real profile id once profile setup completes.
	ActorID   kernel.ProfileID
	ActorName string

	// Exactly one of these is set after profile setup, matching Role.
	Student *student.Student
	Company *company.Company

	SelectedJobID     kernel.JobID
	SelectedStudentID kernel.StudentID
}

func initialSession() Session {
	return Session{
		Role: kernel.RoleStudent,
		View: ViewLogin,
	}
}

// ProfileComplete reports whether the sitting has a real profile behind it.
func (s *Session) ProfileComplete() bool {
	return s.Student != nil || s.Company != nil
}
