package rbac

import "strings"

// Role is the closed set of capability tiers an identity can hold.
// Wire and storage forms may carry the legacy "ROLE_" authority prefix;
// ParseRole strips it exactly once so that comparisons are plain equality.
type Role string

const (
	RoleUnknown Role = ""
	RoleAdmin   Role = "ADMIN"
	RoleSupport Role = "SUPPORT"
	RoleAgent   Role = "AGENT"
	RoleVisitor Role = "VISITOR"
)

const authorityPrefix = "ROLE_"

// ParseRole normalizes a wire/storage role string into a Role. Parsing is
// idempotent: feeding an already-normalized value back in is a no-op.
// Unknown strings map to RoleUnknown, which matches nothing.
func ParseRole(s string) Role {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, authorityPrefix)

	switch Role(normalized) {
	case RoleAdmin, RoleSupport, RoleAgent, RoleVisitor:
		return Role(normalized)
	}
	return RoleUnknown
}

func (r Role) Valid() bool {
	return r != RoleUnknown
}

// Authority returns the prefixed wire form expected by legacy consumers,
// e.g. "ROLE_ADMIN".
func (r Role) Authority() string {
	if !r.Valid() {
		return ""
	}
	return authorityPrefix + string(r)
}

func (r Role) String() string {
	return string(r)
}

// Matches reports whether the user's role satisfies the required one.
func Matches(userRole, required Role) bool {
	return userRole.Valid() && userRole == required
}

// MatchesAny reports whether the user's role satisfies any of the required
// roles. An empty or nil requirement means the target is unrestricted.
func MatchesAny(userRole Role, required []Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		if Matches(userRole, want) {
			return true
		}
	}
	return false
}
