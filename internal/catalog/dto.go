package catalog

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
)

type ServiceDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (d ServiceDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MinLength(2).MaxLength(150)
	v.Field("description", d.Description).MaxLength(2000)
	v.Field("type", d.Type).Required().Custom(func(value interface{}) *internal.AppError {
		if !ValidServiceType(d.Type) {
			return internal.NewValidationFieldError("type", "unknown service type", internal.ErrCodeValidationFailed)
		}
		return nil
	})
	return v.Validate()
}
