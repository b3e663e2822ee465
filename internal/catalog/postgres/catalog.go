package postgres

import (
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/catalog"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*catalog.CatalogService, error) {
	var services []*catalog.CatalogService
	if err := r.db.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *Repository) GetActive() ([]*catalog.CatalogService, error) {
	var services []*catalog.CatalogService
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *Repository) GetByID(id int64) (*catalog.CatalogService, error) {
	var cs catalog.CatalogService
	if err := r.db.First(&cs, id).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *Repository) Create(cs *catalog.CatalogService) error {
	return r.db.Create(cs).Error
}

func (r *Repository) Update(cs *catalog.CatalogService) error {
	return r.db.Save(cs).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&catalog.CatalogService{}, id).Error
}
