package message

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
)

type ContactDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (d ContactDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(150)
	v.Field("email", d.Email).Required().Email()
	v.Field("subject", d.Subject).Required().MaxLength(200)
	v.Field("content", d.Content).Required().MaxLength(5000)
	return v.Validate()
}
