package guard

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/aosmicepp/platform/internal/rbac"
)

func TestGuard(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Guard Module Suite")
}

// fakeSession is a fixed session state snapshot.
type fakeSession struct {
	authenticated bool
	mustChange    bool
	role          string
}

func (f *fakeSession) IsAuthenticated() bool    { return f.authenticated }
func (f *fakeSession) MustChangePassword() bool { return f.mustChange }

func (f *fakeSession) HasAnyRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	if !f.authenticated {
		return false
	}
	required := make([]rbac.Role, 0, len(roles))
	for _, r := range roles {
		required = append(required, rbac.ParseRole(r))
	}
	return rbac.MatchesAny(rbac.ParseRole(f.role), required)
}

var _ = ginkgo.Describe("Protected", func() {
	ginkgo.Context("without a session", func() {
		session := &fakeSession{}

		ginkgo.It("should redirect to the login screen", func() {
			decision := Protected(session, "/admin/users", "ADMIN")

			gomega.Expect(decision.Allowed).To(gomega.BeFalse())
			gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathLogin))
		})

		ginkgo.It("should prefer login over the password-change redirect", func() {
			expired := &fakeSession{authenticated: false, mustChange: true}
			decision := Protected(expired, "/admin/users")

			gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathLogin))
		})
	})

	ginkgo.Context("with a valid session", func() {
		ginkgo.It("should allow a matching role", func() {
			session := &fakeSession{authenticated: true, role: "ADMIN"}
			decision := Protected(session, "/admin/users", "ADMIN")

			gomega.Expect(decision.Allowed).To(gomega.BeTrue())
			gomega.Expect(decision.RedirectTo).To(gomega.BeEmpty())
		})

		ginkgo.It("should send a mismatched role to the unauthorized screen", func() {
			session := &fakeSession{authenticated: true, role: "SUPPORT"}
			decision := Protected(session, "/admin/users", "ADMIN")

			gomega.Expect(decision.Allowed).To(gomega.BeFalse())
			gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathUnauthorized))
		})

		ginkgo.It("should allow any authenticated user when no role is required", func() {
			session := &fakeSession{authenticated: true, role: "AGENT"}
			decision := Protected(session, "/profile")

			gomega.Expect(decision.Allowed).To(gomega.BeTrue())
		})

		ginkgo.It("should accept required roles in prefixed form", func() {
			session := &fakeSession{authenticated: true, role: "ADMIN"}
			decision := Protected(session, "/admin/users", "ROLE_ADMIN")

			gomega.Expect(decision.Allowed).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("with a pending password change", func() {
		session := &fakeSession{authenticated: true, mustChange: true, role: "SUPPORT"}

		ginkgo.It("should force navigation to the change-password screen", func() {
			decision := Protected(session, "/admin/users", "SUPPORT")

			gomega.Expect(decision.Allowed).To(gomega.BeFalse())
			gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathChangePassword))
		})

		ginkgo.It("should allow the change-password screen itself", func() {
			decision := Protected(session, PathChangePassword)

			gomega.Expect(decision.Allowed).To(gomega.BeTrue())
		})

		ginkgo.It("should outrank the role check", func() {
			decision := Protected(session, "/admin/users", "ADMIN")

			gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathChangePassword))
		})
	})

	ginkgo.Context("repeated evaluation", func() {
		ginkgo.It("should return the same decision for unchanged state", func() {
			session := &fakeSession{authenticated: true, role: "SUPPORT"}

			first := Protected(session, "/admin/users", "ADMIN")
			second := Protected(session, "/admin/users", "ADMIN")

			gomega.Expect(second).To(gomega.Equal(first))
		})
	})
})

var _ = ginkgo.Describe("Guest", func() {
	ginkgo.It("should allow a signed-out visitor", func() {
		decision := Guest(&fakeSession{})

		gomega.Expect(decision.Allowed).To(gomega.BeTrue())
	})

	ginkgo.It("should send a signed-in admin to the admin area", func() {
		decision := Guest(&fakeSession{authenticated: true, role: "ADMIN"})

		gomega.Expect(decision.Allowed).To(gomega.BeFalse())
		gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathAdminHome))
	})

	ginkgo.It("should send a signed-in support user to the admin area", func() {
		decision := Guest(&fakeSession{authenticated: true, role: "SUPPORT"})

		gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathAdminHome))
	})

	ginkgo.It("should send other signed-in roles to the public portal", func() {
		decision := Guest(&fakeSession{authenticated: true, role: "AGENT"})

		gomega.Expect(decision.RedirectTo).To(gomega.Equal(PathHome))
	})

	ginkgo.It("should be idempotent for unchanged state", func() {
		session := &fakeSession{authenticated: true, role: "ADMIN"}

		first := Guest(session)
		second := Guest(session)

		gomega.Expect(second).To(gomega.Equal(first))
	})
})
