package postgres

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal/auth"
	"github.com/aosmicepp/platform/internal/rbac"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const accountColumns = `id, email, password_hash, first_name, last_name, role, is_active, must_change_password, phone_number, department`

func (r *Repository) GetByEmail(email string) (*auth.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = ?`, accountColumns)
	return r.scanAccount(r.db.Raw(query, email).Row())
}

func (r *Repository) GetByID(userID int64) (*auth.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = ?`, accountColumns)
	return r.scanAccount(r.db.Raw(query, userID).Row())
}

func (r *Repository) UpdatePassword(userID int64, passwordHash string, mustChange bool) error {
	return r.db.Exec(
		`UPDATE users SET password_hash = ?, must_change_password = ?, updated_at = now() WHERE id = ?`,
		passwordHash, mustChange, userID,
	).Error
}

func (r *Repository) scanAccount(row *sql.Row) (*auth.Account, error) {
	var account auth.Account
	var role string
	if err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&role,
		&account.IsActive,
		&account.MustChangePassword,
		&account.PhoneNumber,
		&account.Department,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	account.Role = rbac.ParseRole(role)
	return &account, nil
}
