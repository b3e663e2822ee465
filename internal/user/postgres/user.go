package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetByID(id int64) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByRole(role rbac.Role) ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Where("role = ?", role.String()).Order("last_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetRecent(since time.Time) ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Where("created_at >= ?", since).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) ExistsByUniqueFields(email, cin, matricule string) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("email = ? OR cin = ? OR matricule = ?", email, cin, matricule).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) Update(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}
