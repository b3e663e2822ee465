package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/user"
	userPostgres "github.com/aosmicepp/platform/internal/user/postgres"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.RepositoryAPI
	)

	seed := func(u *user.User) {
		Expect(repo.Create(u)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&user.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = userPostgres.NewRepository(db)
	})

	Describe("Create and GetByID", func() {
		It("should round-trip a user", func() {
			seed(&user.User{
				Email:     "admin@aos-micepp.org",
				FirstName: "Ahmed",
				LastName:  "Ben Ali",
				Role:      rbac.RoleAdmin.String(),
				IsActive:  true,
				CIN:       "AB123456",
				Matricule: "M-001",
			})

			found, err := repo.GetByID(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Email).To(Equal("admin@aos-micepp.org"))
			Expect(found.Role).To(Equal("ADMIN"))
			Expect(found.CreatedAt).NotTo(BeZero())
		})
	})

	Describe("ExistsByUniqueFields", func() {
		BeforeEach(func() {
			seed(&user.User{
				Email:     "admin@aos-micepp.org",
				Role:      rbac.RoleAdmin.String(),
				CIN:       "AB123456",
				Matricule: "M-001",
			})
		})

		It("should report a duplicate email", func() {
			exists, err := repo.ExistsByUniqueFields("admin@aos-micepp.org", "XX000000", "M-999")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report a duplicate CIN", func() {
			exists, err := repo.ExistsByUniqueFields("other@aos-micepp.org", "AB123456", "M-999")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report a duplicate matricule", func() {
			exists, err := repo.ExistsByUniqueFields("other@aos-micepp.org", "XX000000", "M-001")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should pass when everything is unique", func() {
			exists, err := repo.ExistsByUniqueFields("other@aos-micepp.org", "XX000000", "M-999")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("GetByRole", func() {
		BeforeEach(func() {
			seed(&user.User{Email: "a@aos-micepp.org", Role: "ADMIN", CIN: "A1", Matricule: "M1"})
			seed(&user.User{Email: "b@aos-micepp.org", Role: "SUPPORT", CIN: "B1", Matricule: "M2"})
			seed(&user.User{Email: "c@aos-micepp.org", Role: "SUPPORT", CIN: "C1", Matricule: "M3"})
		})

		It("should return only the requested role", func() {
			supports, err := repo.GetByRole(rbac.RoleSupport)
			Expect(err).NotTo(HaveOccurred())
			Expect(supports).To(HaveLen(2))
			for _, u := range supports {
				Expect(u.Role).To(Equal("SUPPORT"))
			}
		})
	})

	Describe("GetRecent", func() {
		It("should exclude users created before the cutoff", func() {
			seed(&user.User{Email: "old@aos-micepp.org", Role: "AGENT", CIN: "O1", Matricule: "M1"})
			Expect(db.Model(&user.User{}).Where("email = ?", "old@aos-micepp.org").
				Update("created_at", time.Now().Add(-60*24*time.Hour)).Error).To(Succeed())
			seed(&user.User{Email: "new@aos-micepp.org", Role: "AGENT", CIN: "N1", Matricule: "M2"})

			recent, err := repo.GetRecent(time.Now().Add(-30 * 24 * time.Hour))
			Expect(err).NotTo(HaveOccurred())
			Expect(recent).To(HaveLen(1))
			Expect(recent[0].Email).To(Equal("new@aos-micepp.org"))
		})
	})

	Describe("Count", func() {
		It("should count all users", func() {
			seed(&user.User{Email: "a@aos-micepp.org", Role: "ADMIN", CIN: "A1", Matricule: "M1"})
			seed(&user.User{Email: "b@aos-micepp.org", Role: "AGENT", CIN: "B1", Matricule: "M2"})

			count, err := repo.Count()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})
	})
})
