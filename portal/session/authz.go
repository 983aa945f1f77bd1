package session

import (
	"github.com/banoqabil/jobhub/pkg/kernel"
	mapset "github.com/deckarep/golang-set/v2"
)

// loggedOutViews is all an anonymous visitor may see.
var loggedOutViews = mapset.NewThreadUnsafeSet(ViewLogin)

// allowedViews is the role-to-screen authorization table. Navigation to
// a view outside the signed-in role's row is rejected and leaves the
// current view unchanged.
var allowedViews = map[kernel.Role]mapset.Set[ViewState]{
	kernel.RoleStudent: mapset.NewThreadUnsafeSet(
		ViewLogin, ViewProfileSetup, ViewHome, ViewJobDetails,
		ViewStudentCV, ViewMessages,
	),
	kernel.RoleCompany: mapset.NewThreadUnsafeSet(
		ViewLogin, ViewProfileSetup, ViewCompanyPortal,
		ViewStudentCV, ViewMessages,
	),
	kernel.RoleAdmin: mapset.NewThreadUnsafeSet(
		ViewLogin, ViewAdmin,
	),
}

// CanAccess reports whether the sitting may show the view.
func CanAccess(loggedIn bool, role kernel.Role, view ViewState) bool {
	if !loggedIn {
		return loggedOutViews.Contains(view)
	}
	row, ok := allowedViews[role]
	if !ok {
		return false
	}
	return row.Contains(view)
}
