package news

import (
	"time"
)

// Article is a news entry shown on the public portal once published.
type Article struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl" gorm:"column:image_url"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt" gorm:"column:published_at"`
	AuthorID    int64      `json:"authorId" gorm:"column:author_id"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

type RepositoryAPI interface {
	GetAll() ([]*Article, error)
	GetPublished() ([]*Article, error)
	GetByID(id int64) (*Article, error)
	Create(a *Article) error
	Update(a *Article) error
	Delete(id int64) error
}
