package guard

// Navigation targets the guards redirect to.
const (
	PathLogin          = "/auth/login"
	PathChangePassword = "/auth/change-password"
	PathUnauthorized   = "/unauthorized"
	PathAdminHome      = "/admin"
	PathHome           = "/"
)

// Session is the read-only view of the session state the guards consult.
type Session interface {
	IsAuthenticated() bool
	MustChangePassword() bool
	HasAnyRole(roles ...string) bool
}

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo names where navigation should go instead. Guards are pure:
// the same session state and target always produce the same decision, and
// the caller performs the redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Protected gates authenticated routes. Checks run in a fixed order:
// sign-in first, then the forced password change, then the role
// requirement. requiredRoles empty means any authenticated user passes.
func Protected(s Session, target string, requiredRoles ...string) Decision {
	if !s.IsAuthenticated() {
		return redirect(PathLogin)
	}

	if s.MustChangePassword() && target != PathChangePassword {
		return redirect(PathChangePassword)
	}

	if !s.HasAnyRole(requiredRoles...) {
		return redirect(PathUnauthorized)
	}

	return allow()
}

// Guest gates routes meant for signed-out visitors, such as the login
// screen. A signed-in user is sent to their home surface instead: staff
// roles land on the admin area, everyone else on the public portal.
func Guest(s Session) Decision {
	if !s.IsAuthenticated() {
		return allow()
	}

	if s.HasAnyRole("ADMIN", "SUPPORT") {
		return redirect(PathAdminHome)
	}
	return redirect(PathHome)
}
