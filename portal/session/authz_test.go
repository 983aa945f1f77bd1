package session

import (
	"testing"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/stretchr/testify/assert"
)

func TestLoggedOutSeesOnlyLogin(t *testing.T) {
	for _, view := range []ViewState{
		ViewProfileSetup, ViewHome, ViewJobDetails, ViewAdmin,
		ViewCompanyPortal, ViewStudentCV, ViewMessages,
	} {
		assert.False(t, CanAccess(false, kernel.RoleStudent, view), "view %s", view)
	}
	assert.True(t, CanAccess(false, kernel.RoleStudent, ViewLogin))
}

func TestAuthorizationTablePerRole(t *testing.T) {
	tests := []struct {
		role    kernel.Role
		view    ViewState
		allowed bool
	}{
		{kernel.RoleStudent, ViewHome, true},
		{kernel.RoleStudent, ViewJobDetails, true},
		{kernel.RoleStudent, ViewMessages, true},
		{kernel.RoleStudent, ViewAdmin, false},
		{kernel.RoleStudent, ViewCompanyPortal, false},
		{kernel.RoleCompany, ViewCompanyPortal, true},
		{kernel.RoleCompany, ViewStudentCV, true},
		{kernel.RoleCompany, ViewHome, false},
		{kernel.RoleCompany, ViewAdmin, false},
		{kernel.RoleAdmin, ViewAdmin, true},
		{kernel.RoleAdmin, ViewHome, false},
		{kernel.RoleAdmin, ViewMessages, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.view), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAccess(true, tt.role, tt.view))
		})
	}
}

func TestUnknownRoleDeniedEverything(t *testing.T) {
	assert.False(t, CanAccess(true, kernel.Role("WIZARD"), ViewHome))
}
