package news

import (
	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/validation"
)

type ArticleDTO struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

func (d ArticleDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required().MinLength(3).MaxLength(200)
	v.Field("summary", d.Summary).MaxLength(500)
	v.Field("content", d.Content).Required()
	return v.Validate()
}
