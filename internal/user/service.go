package user

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/events"
	"github.com/aosmicepp/platform/internal/rbac"
)

const recentWindow = 30 * 24 * time.Hour

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	bus        *events.EventBus
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, bus *events.EventBus, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		bus:        bus,
		logger:     logger,
	}
}

// Register creates a staff account with a generated temporary password and
// the must-change-password flag set.
func (s *Service) Register(ctx context.Context, dto RegisterUserDTO) (*RegisterUserResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUniqueFields(dto.Email, dto.CIN, dto.Matricule)
	if err != nil {
		return nil, internal.NewInternalError("failed to check uniqueness", err)
	}
	if exists {
		return nil, internal.ErrUserExists
	}

	tempPassword, err := generateTemporaryPassword(10)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate temporary password", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Email:              dto.Email,
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		PasswordHash:       string(hash),
		Role:               rbac.ParseRole(dto.Role).String(),
		IsActive:           true,
		MustChangePassword: true,
		PhoneNumber:        dto.PhoneNumber,
		CIN:                dto.CIN,
		Matricule:          dto.Matricule,
	}

	if err := s.repo.Create(u); err != nil {
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", u.ID, "email", u.Email, "role", u.Role)
	if s.bus != nil {
		_ = s.bus.Publish(ctx, events.NewEvent(events.TypeUserRegistered, map[string]interface{}{
			"user_id": u.ID,
			"email":   u.Email,
			"role":    u.Role,
		}))
	}

	return &RegisterUserResponse{User: u, TemporaryPassword: tempPassword}, nil
}

func (s *Service) GetAll() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return users, nil
}

func (s *Service) GetByID(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

// Update applies the editable profile fields; empty fields are left alone.
func (s *Service) Update(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.FirstName != "" {
		u.FirstName = dto.FirstName
	}
	if dto.LastName != "" {
		u.LastName = dto.LastName
	}
	if dto.PhoneNumber != "" {
		u.PhoneNumber = dto.PhoneNumber
	}
	if dto.Department != "" {
		u.Department = dto.Department
	}
	if dto.Role != "" {
		u.Role = rbac.ParseRole(dto.Role).String()
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(u); err != nil {
		return nil, internal.NewInternalError("failed to update user", err)
	}
	return u, nil
}

// ToggleStatus flips the active flag.
func (s *Service) ToggleStatus(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	u.IsActive = !u.IsActive
	if err := s.repo.Update(u); err != nil {
		return nil, internal.NewInternalError("failed to toggle user status", err)
	}

	s.logger.Info("user status toggled", "user_id", id, "is_active", u.IsActive)
	return u, nil
}

func (s *Service) Count() (int64, error) {
	return s.repo.Count()
}

func (s *Service) GetByRole(roleStr string) ([]*User, error) {
	role := rbac.ParseRole(roleStr)
	if !role.Valid() {
		return nil, internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	return s.repo.GetByRole(role)
}

// GetRecent returns users created inside the last 30 days.
func (s *Service) GetRecent() ([]*User, error) {
	return s.repo.GetRecent(time.Now().Add(-recentWindow))
}

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func generateTemporaryPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
