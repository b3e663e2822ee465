package postgres

import (
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/demande"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*demande.Demande, error) {
	var demandes []*demande.Demande
	if err := r.db.Order("created_at DESC").Find(&demandes).Error; err != nil {
		return nil, err
	}
	return demandes, nil
}

func (r *Repository) GetByID(id int64) (*demande.Demande, error) {
	var d demande.Demande
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetByUserID(userID int64) ([]*demande.Demande, error) {
	var demandes []*demande.Demande
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&demandes).Error; err != nil {
		return nil, err
	}
	return demandes, nil
}

func (r *Repository) GetRecent(limit int) ([]*demande.Demande, error) {
	var demandes []*demande.Demande
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&demandes).Error; err != nil {
		return nil, err
	}
	return demandes, nil
}

func (r *Repository) Create(d *demande.Demande) error {
	return r.db.Create(d).Error
}

func (r *Repository) Update(d *demande.Demande) error {
	return r.db.Save(d).Error
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&demande.Demande{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountByStatus(status demande.Status) (int64, error) {
	var count int64
	err := r.db.Model(&demande.Demande{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
