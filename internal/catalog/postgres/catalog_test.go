package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aosmicepp/platform/internal/catalog"
	catalogPostgres "github.com/aosmicepp/platform/internal/catalog/postgres"
)

func TestCatalogPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Postgres Suite")
}

var _ = Describe("Catalog Repository", func() {
	var (
		db   *gorm.DB
		repo catalog.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&catalog.CatalogService{})
		Expect(err).NotTo(HaveOccurred())

		repo = catalogPostgres.NewRepository(db)
	})

	Describe("Create and GetByID", func() {
		It("should round-trip a service", func() {
			cs := &catalog.CatalogService{
				Name:        "Colonie de vacances",
				Description: "Séjours d'été pour les enfants des adhérents",
				Type:        catalog.TypeSocial,
				IsActive:    true,
			}
			Expect(repo.Create(cs)).To(Succeed())
			Expect(cs.ID).NotTo(BeZero())

			found, err := repo.GetByID(cs.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("Colonie de vacances"))
			Expect(found.Type).To(Equal(catalog.TypeSocial))
		})
	})

	Describe("GetActive", func() {
		BeforeEach(func() {
			Expect(repo.Create(&catalog.CatalogService{Name: "Omra", Type: catalog.TypeVoyage, IsActive: true})).To(Succeed())
			Expect(repo.Create(&catalog.CatalogService{Name: "Club de sport", Type: catalog.TypeSportif, IsActive: false})).To(Succeed())
		})

		It("should hide inactive services", func() {
			active, err := repo.GetActive()
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))
			Expect(active[0].Name).To(Equal("Omra"))
		})

		It("should still list everything through GetAll", func() {
			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("GetAll ordering", func() {
		It("should sort by name", func() {
			Expect(repo.Create(&catalog.CatalogService{Name: "Zoo", Type: catalog.TypeCulturel})).To(Succeed())
			Expect(repo.Create(&catalog.CatalogService{Name: "Aide scolaire", Type: catalog.TypeSocial})).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all[0].Name).To(Equal("Aide scolaire"))
			Expect(all[1].Name).To(Equal("Zoo"))
		})
	})

	Describe("Update", func() {
		It("should persist field changes", func() {
			cs := &catalog.CatalogService{Name: "Mutuelle", Type: catalog.TypeSante, IsActive: true}
			Expect(repo.Create(cs)).To(Succeed())

			cs.IsActive = false
			cs.Description = "Suspendu pour révision"
			Expect(repo.Update(cs)).To(Succeed())

			found, err := repo.GetByID(cs.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.IsActive).To(BeFalse())
			Expect(found.Description).To(Equal("Suspendu pour révision"))
		})
	})

	Describe("Delete", func() {
		It("should remove the row", func() {
			cs := &catalog.CatalogService{Name: "Billetterie", Type: catalog.TypeCulturel}
			Expect(repo.Create(cs)).To(Succeed())
			Expect(repo.Delete(cs.ID)).To(Succeed())

			_, err := repo.GetByID(cs.ID)
			Expect(err).To(MatchError(gorm.ErrRecordNotFound))
		})
	})
})
