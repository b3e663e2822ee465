package user

import (
	"time"

	"github.com/aosmicepp/platform/internal/rbac"
)

// User is the full staff identity record. Role is stored normalized; the
// prefixed authority form only exists on the wire.
type User struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Email              string    `json:"email" gorm:"uniqueIndex"`
	FirstName          string    `json:"firstName" gorm:"column:first_name"`
	LastName           string    `json:"lastName" gorm:"column:last_name"`
	PasswordHash       string    `json:"-" gorm:"column:password_hash"`
	Role               string    `json:"role"`
	IsActive           bool      `json:"isActive" gorm:"column:is_active"`
	MustChangePassword bool      `json:"mustChangePassword" gorm:"column:must_change_password"`
	PhoneNumber        string    `json:"phoneNumber" gorm:"column:phone_number"`
	Department         string    `json:"department"`
	CIN                string    `json:"cin" gorm:"column:cin"`
	Matricule          string    `json:"matricule"`
	CreatedAt          time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) RoleValue() rbac.Role {
	return rbac.ParseRole(u.Role)
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type RepositoryAPI interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
	GetByRole(role rbac.Role) ([]*User, error)
	GetRecent(since time.Time) ([]*User, error)
	ExistsByUniqueFields(email, cin, matricule string) (bool, error)
	Create(u *User) error
	Update(u *User) error
	Count() (int64, error)
}
