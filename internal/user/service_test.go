package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/pkg/logger"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

// Mock RepositoryAPI for testing
type mockUserRepository struct {
	users  map[int64]*User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	repo := &mockUserRepository{users: make(map[int64]*User), nextID: 1}
	repo.users[1] = &User{
		ID: 1, Email: "admin@aos-micepp.org", FirstName: "Ahmed", LastName: "Ben Ali",
		Role: "ADMIN", IsActive: true, CIN: "AB123456", Matricule: "M-001",
		CreatedAt: time.Now().Add(-45 * 24 * time.Hour),
	}
	repo.users[2] = &User{
		ID: 2, Email: "support@aos-micepp.org", FirstName: "Fatima", LastName: "Zahra",
		Role: "SUPPORT", IsActive: true, CIN: "CD654321", Matricule: "M-002",
		CreatedAt: time.Now().Add(-2 * 24 * time.Hour),
	}
	repo.nextID = 3
	return repo
}

func (m *mockUserRepository) GetAll() ([]*User, error) {
	var out []*User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepository) GetByID(id int64) (*User, error) {
	if u, exists := m.users[id]; exists {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) GetByRole(role rbac.Role) ([]*User, error) {
	var out []*User
	for _, u := range m.users {
		if u.Role == role.String() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetRecent(since time.Time) ([]*User, error) {
	var out []*User
	for _, u := range m.users {
		if u.CreatedAt.After(since) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) ExistsByUniqueFields(email, cin, matricule string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email || u.CIN == cin || u.Matricule == matricule {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) Create(u *User) error {
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) Update(u *User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) Count() (int64, error) {
	return int64(len(m.users)), nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		service = NewService(mockRepo, bcrypt.MinCost, nil, logger.L())
		ctx = context.Background()
	})

	ginkgo.Describe("Register", func() {
		validDTO := RegisterUserDTO{
			FirstName: "Youssef", LastName: "El Amrani",
			Email: "youssef@aos-micepp.org", CIN: "EF987654",
			Matricule: "M-003", Role: "AGENT",
		}

		ginkgo.Context("when the request is valid", func() {
			ginkgo.It("should create the account with a temporary password", func() {
				response, err := service.Register(ctx, validDTO)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.User.ID).ToNot(gomega.BeZero())
				gomega.Expect(response.TemporaryPassword).To(gomega.HaveLen(10))
				gomega.Expect(bcrypt.CompareHashAndPassword(
					[]byte(response.User.PasswordHash),
					[]byte(response.TemporaryPassword),
				)).To(gomega.Succeed())
			})

			ginkgo.It("should force a password change on first login", func() {
				response, err := service.Register(ctx, validDTO)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.User.MustChangePassword).To(gomega.BeTrue())
				gomega.Expect(response.User.IsActive).To(gomega.BeTrue())
			})

			ginkgo.It("should store the role normalized even when sent prefixed", func() {
				dto := validDTO
				dto.Role = "ROLE_SUPPORT"

				response, err := service.Register(ctx, dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.User.Role).To(gomega.Equal("SUPPORT"))
			})
		})

		ginkgo.Context("when a unique field collides", func() {
			ginkgo.It("should reject a duplicate email", func() {
				dto := validDTO
				dto.Email = "admin@aos-micepp.org"

				_, err := service.Register(ctx, dto)
				gomega.Expect(err).To(gomega.Equal(internal.ErrUserExists))
			})

			ginkgo.It("should reject a duplicate matricule", func() {
				dto := validDTO
				dto.Matricule = "M-001"

				_, err := service.Register(ctx, dto)
				gomega.Expect(err).To(gomega.Equal(internal.ErrUserExists))
			})
		})

		ginkgo.Context("when the request is invalid", func() {
			ginkgo.It("should reject an unknown role", func() {
				dto := validDTO
				dto.Role = "SUPERUSER"

				_, err := service.Register(ctx, dto)
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should reject missing required fields", func() {
				_, err := service.Register(ctx, RegisterUserDTO{Email: "x@aos-micepp.org"})
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should leave empty fields untouched", func() {
			updated, err := service.Update(1, UpdateUserDTO{PhoneNumber: "0600000000"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.PhoneNumber).To(gomega.Equal("0600000000"))
			gomega.Expect(updated.FirstName).To(gomega.Equal("Ahmed"))
			gomega.Expect(updated.Role).To(gomega.Equal("ADMIN"))
		})

		ginkgo.It("should apply an explicit active flag", func() {
			inactive := false
			updated, err := service.Update(1, UpdateUserDTO{IsActive: &inactive})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.IsActive).To(gomega.BeFalse())
		})

		ginkgo.It("should reject an unknown user", func() {
			_, err := service.Update(99, UpdateUserDTO{FirstName: "X"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})

	ginkgo.Describe("ToggleStatus", func() {
		ginkgo.It("should flip the active flag", func() {
			toggled, err := service.ToggleStatus(2)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(toggled.IsActive).To(gomega.BeFalse())

			toggled, err = service.ToggleStatus(2)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(toggled.IsActive).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("GetByRole", func() {
		ginkgo.It("should accept the prefixed authority form", func() {
			users, err := service.GetByRole("ROLE_SUPPORT")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(1))
			gomega.Expect(users[0].Email).To(gomega.Equal("support@aos-micepp.org"))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.GetByRole("SUPERUSER")

			var appErr *internal.AppError
			gomega.Expect(errors.As(err, &appErr)).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidRole))
		})
	})

	ginkgo.Describe("GetRecent", func() {
		ginkgo.It("should only include users inside the window", func() {
			users, err := service.GetRecent()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(1))
			gomega.Expect(users[0].Email).To(gomega.Equal("support@aos-micepp.org"))
		})
	})
})
