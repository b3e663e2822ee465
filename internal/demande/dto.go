package demande

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
)

type CreateDemandeDTO struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	ServiceType string `json:"serviceType"`
}

func (d CreateDemandeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("subject", d.Subject).Required().MinLength(3).MaxLength(200)
	v.Field("description", d.Description).Required().MaxLength(5000)
	v.Field("serviceType", d.ServiceType).Required().MaxLength(100)
	return v.Validate()
}

type UpdateStatusDTO struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

func (d UpdateStatusDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("status", d.Status).Required().Custom(func(value interface{}) *internal.AppError {
		if !Status(d.Status).Valid() {
			return internal.NewValidationFieldError("status", "status must be one of EN_ATTENTE, EN_COURS, TERMINEE, REJETEE", internal.ErrCodeValidationFailed)
		}
		return nil
	})
	return v.Validate()
}

// AssignDTO carries the support user to assign; a nil AssigneeID unassigns.
type AssignDTO struct {
	AssigneeID *int64 `json:"assigneeId"`
}
