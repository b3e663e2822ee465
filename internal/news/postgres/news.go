package postgres

import (
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/news"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*news.Article, error) {
	var articles []*news.Article
	if err := r.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *Repository) GetPublished() ([]*news.Article, error) {
	var articles []*news.Article
	if err := r.db.Where("published = ?", true).Order("published_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *Repository) GetByID(id int64) (*news.Article, error) {
	var a news.Article
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(a *news.Article) error {
	return r.db.Create(a).Error
}

func (r *Repository) Update(a *news.Article) error {
	return r.db.Save(a).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&news.Article{}, id).Error
}
