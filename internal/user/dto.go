package user

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
	"github.com/aosmicepp/platform/internal/rbac"
)

// RegisterUserDTO is what the admin screen submits to create a staff
// account. The platform generates a temporary password.
type RegisterUserDTO struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CIN         string `json:"cin"`
	Matricule   string `json:"matricule"`
	Role        string `json:"role"`
}

func (d RegisterUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).Required().MaxLength(100)
	v.Field("lastName", d.LastName).Required().MaxLength(100)
	v.Field("email", d.Email).Required().Email()
	v.Field("cin", d.CIN).Required().MaxLength(20)
	v.Field("matricule", d.Matricule).Required().MaxLength(20)
	v.Field("role", d.Role).Required().Custom(func(value interface{}) *internal.AppError {
		if !rbac.ParseRole(d.Role).Valid() {
			return internal.NewValidationFieldError("role", "role must be one of ADMIN, SUPPORT, AGENT, VISITOR", internal.ErrCodeInvalidRole)
		}
		return nil
	})
	return v.Validate()
}

// UpdateUserDTO carries the editable profile fields.
type UpdateUserDTO struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	IsActive    *bool  `json:"isActive"`
}

func (d UpdateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).MaxLength(100)
	v.Field("lastName", d.LastName).MaxLength(100)
	if d.Role != "" && !rbac.ParseRole(d.Role).Valid() {
		return internal.NewValidationFieldError("role", "role must be one of ADMIN, SUPPORT, AGENT, VISITOR", internal.ErrCodeInvalidRole)
	}
	return v.Validate()
}

// RegisterUserResponse echoes the generated temporary password so the admin
// can hand it over; the account is created with must-change-password set.
type RegisterUserResponse struct {
	User              *User  `json:"user"`
	TemporaryPassword string `json:"temporaryPassword"`
}
