package reclamation

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
)

type CreateReclamationDTO struct {
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

func (d CreateReclamationDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("subject", d.Subject).Required().MinLength(3).MaxLength(200)
	v.Field("content", d.Content).Required().MaxLength(5000)
	if d.Priority != "" && !Priority(d.Priority).Valid() {
		return internal.NewValidationFieldError("priority", "priority must be one of BASSE, MOYENNE, HAUTE", internal.ErrCodeValidationFailed)
	}
	return v.Validate()
}

type UpdateStatusDTO struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

func (d UpdateStatusDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("status", d.Status).Required().Custom(func(value interface{}) *internal.AppError {
		if !Status(d.Status).Valid() {
			return internal.NewValidationFieldError("status", "status must be one of OUVERTE, EN_COURS, RESOLUE, FERMEE", internal.ErrCodeValidationFailed)
		}
		return nil
	})
	return v.Validate()
}
