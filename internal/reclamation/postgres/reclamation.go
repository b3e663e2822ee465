package postgres

import (
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/reclamation"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*reclamation.Reclamation, error) {
	var reclamations []*reclamation.Reclamation
	if err := r.db.Order("created_at DESC").Find(&reclamations).Error; err != nil {
		return nil, err
	}
	return reclamations, nil
}

func (r *Repository) GetByID(id int64) (*reclamation.Reclamation, error) {
	var rec reclamation.Reclamation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) Create(rec *reclamation.Reclamation) error {
	return r.db.Create(rec).Error
}

func (r *Repository) Update(rec *reclamation.Reclamation) error {
	return r.db.Save(rec).Error
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&reclamation.Reclamation{}).Count(&count).Error
	return count, err
}
