package auth

import (
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

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock RepositoryAPI for testing
type mockAccountRepository struct {
	byEmail map[string]*Account
	byID    map[int64]*Account
	updated map[int64]string
	cleared map[int64]bool
}

func newMockAccountRepository() *mockAccountRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	accounts := []*Account{
		{
			ID: 1, Email: "admin@aos-micepp.org", PasswordHash: string(hashedPassword),
			FirstName: "Ahmed", LastName: "Ben Ali", Role: rbac.RoleAdmin,
			IsActive: true, Department: "Administration",
		},
		{
			ID: 2, Email: "support@aos-micepp.org", PasswordHash: string(hashedPassword),
			FirstName: "Fatima", LastName: "Zahra", Role: rbac.RoleSupport,
			IsActive: true, MustChangePassword: true, Department: "Support",
		},
		{
			ID: 3, Email: "inactive@aos-micepp.org", PasswordHash: string(hashedPassword),
			FirstName: "Mohamed", LastName: "Kassimi", Role: rbac.RoleAgent,
			IsActive: false,
		},
	}

	repo := &mockAccountRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[int64]*Account),
		updated: make(map[int64]string),
		cleared: make(map[int64]bool),
	}
	for _, a := range accounts {
		repo.byEmail[a.Email] = a
		repo.byID[a.ID] = a
	}
	return repo
}

func (m *mockAccountRepository) GetByEmail(email string) (*Account, error) {
	if a, exists := m.byEmail[email]; exists {
		return a, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAccountRepository) GetByID(userID int64) (*Account, error) {
	if a, exists := m.byID[userID]; exists {
		return a, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAccountRepository) UpdatePassword(userID int64, passwordHash string, mustChange bool) error {
	m.updated[userID] = passwordHash
	m.cleared[userID] = !mustChange
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockAccountRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockAccountRepository()
		tokenGen = NewJWTTokenGenerator("test-secret-with-enough-characters", time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, logger.L())
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return the login payload with a token", func() {
				// Given
				dto := LoginDTO{Email: "admin@aos-micepp.org", Password: "correct_password"}

				// When
				response, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(response.UserID).To(gomega.Equal(int64(1)))
				gomega.Expect(response.Email).To(gomega.Equal("admin@aos-micepp.org"))
				gomega.Expect(response.FirstName).To(gomega.Equal("Ahmed"))
				gomega.Expect(response.MustChangePassword).To(gomega.BeFalse())
			})

			ginkgo.It("should send the role in its prefixed authority form", func() {
				response, err := service.Authenticate(LoginDTO{Email: "support@aos-micepp.org", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.UserType).To(gomega.Equal("ROLE_SUPPORT"))
			})

			ginkgo.It("should propagate the temporary-password flag", func() {
				response, err := service.Authenticate(LoginDTO{Email: "support@aos-micepp.org", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(response.MustChangePassword).To(gomega.BeTrue())
			})

			ginkgo.It("should issue a token that validates back to the same claims", func() {
				response, err := service.Authenticate(LoginDTO{Email: "admin@aos-micepp.org", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateToken(response.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("1"))
				gomega.Expect(claims.Role).To(gomega.Equal("ROLE_ADMIN"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should reject a wrong password", func() {
				_, err := service.Authenticate(LoginDTO{Email: "admin@aos-micepp.org", Password: "wrong"})
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})

			ginkgo.It("should reject an unknown email", func() {
				_, err := service.Authenticate(LoginDTO{Email: "nobody@aos-micepp.org", Password: "correct_password"})
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})

			ginkgo.It("should reject missing fields with a validation error", func() {
				_, err := service.Authenticate(LoginDTO{Email: "admin@aos-micepp.org"})
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})
		})

		ginkgo.Context("when the account is inactive", func() {
			ginkgo.It("should reject with the inactive error", func() {
				_, err := service.Authenticate(LoginDTO{Email: "inactive@aos-micepp.org", Password: "correct_password"})
				gomega.Expect(err).To(gomega.Equal(internal.ErrUserInactive))
			})
		})
	})

	ginkgo.Describe("ValidateToken", func() {
		ginkgo.It("should reject an expired token", func() {
			expiredGen := NewJWTTokenGenerator("test-secret-with-enough-characters", -time.Minute)
			token, err := expiredGen.Generate(mockRepo.byID[1])
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrTokenExpired))
		})

		ginkgo.It("should reject a token signed with another secret", func() {
			otherGen := NewJWTTokenGenerator("another-secret-with-enough-chars!!", time.Hour)
			token, err := otherGen.Generate(mockRepo.byID[1])
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := service.ValidateToken("not-a-token")
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("should update the hash and clear the temporary-password flag", func() {
			err := service.ChangePassword(2, ChangePasswordDTO{
				CurrentPassword: "correct_password",
				NewPassword:     "brand-new-password",
				ConfirmPassword: "brand-new-password",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.updated).To(gomega.HaveKey(int64(2)))
			gomega.Expect(mockRepo.cleared[2]).To(gomega.BeTrue())

			storedHash := mockRepo.updated[2]
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("brand-new-password"))).To(gomega.Succeed())
		})

		ginkgo.It("should reject when confirmation does not match", func() {
			err := service.ChangePassword(2, ChangePasswordDTO{
				CurrentPassword: "correct_password",
				NewPassword:     "brand-new-password",
				ConfirmPassword: "different",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrPasswordMismatch))
		})

		ginkgo.It("should reject a wrong current password", func() {
			err := service.ChangePassword(2, ChangePasswordDTO{
				CurrentPassword: "wrong",
				NewPassword:     "brand-new-password",
				ConfirmPassword: "brand-new-password",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrWrongPassword))
		})
	})
})
