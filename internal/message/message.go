package message

import (
	"time"
)

// MessageContact is a public contact-form submission.
type MessageContact struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (MessageContact) TableName() string {
	return "messages"
}

type RepositoryAPI interface {
	GetAll() ([]*MessageContact, error)
	GetByID(id int64) (*MessageContact, error)
	Create(m *MessageContact) error
	Update(m *MessageContact) error
	Count() (int64, error)
	CountUnread() (int64, error)
}
