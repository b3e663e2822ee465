package postgres

import (
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/message"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*message.MessageContact, error) {
	var messages []*message.MessageContact
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *Repository) GetByID(id int64) (*message.MessageContact, error) {
	var m message.MessageContact
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(m *message.MessageContact) error {
	return r.db.Create(m).Error
}

func (r *Repository) Update(m *message.MessageContact) error {
	return r.db.Save(m).Error
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&message.MessageContact{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&message.MessageContact{}).Where("read = ?", false).Count(&count).Error
	return count, err
}
