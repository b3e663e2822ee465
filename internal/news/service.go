package news

import (
	"log/slog"
	"time"

	"github.com/aosmicepp/platform/internal"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetPublished is the public feed; drafts never leave the admin surface.
func (s *Service) GetPublished() ([]*Article, error) {
	articles, err := s.repo.GetPublished()
	if err != nil {
		return nil, internal.NewInternalError("failed to list published articles", err)
	}
	return articles, nil
}

func (s *Service) GetPublishedByID(id int64) (*Article, error) {
	a, err := s.repo.GetByID(id)
	if err != nil || !a.Published {
		return nil, internal.ErrArticleNotFound
	}
	return a, nil
}

func (s *Service) GetAll() ([]*Article, error) {
	articles, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list articles", err)
	}
	return articles, nil
}

func (s *Service) GetByID(id int64) (*Article, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrArticleNotFound
	}
	return a, nil
}

func (s *Service) Create(authorID int64, dto ArticleDTO) (*Article, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a := &Article{
		Title:    dto.Title,
		Summary:  dto.Summary,
		Content:  dto.Content,
		ImageURL: dto.ImageURL,
		AuthorID: authorID,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, internal.NewInternalError("failed to create article", err)
	}

	s.logger.Info("article created", "article_id", a.ID, "author_id", authorID)
	return a, nil
}

func (s *Service) Update(id int64, dto ArticleDTO) (*Article, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrArticleNotFound
	}

	a.Title = dto.Title
	a.Summary = dto.Summary
	a.Content = dto.Content
	a.ImageURL = dto.ImageURL
	if err := s.repo.Update(a); err != nil {
		return nil, internal.NewInternalError("failed to update article", err)
	}
	return a, nil
}

// TogglePublished flips visibility; first publication stamps published_at.
func (s *Service) TogglePublished(id int64) (*Article, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrArticleNotFound
	}

	a.Published = !a.Published
	if a.Published && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	if err := s.repo.Update(a); err != nil {
		return nil, internal.NewInternalError("failed to toggle article", err)
	}

	s.logger.Info("article visibility toggled", "article_id", a.ID, "published", a.Published)
	return a, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrArticleNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete article", err)
	}
	return nil
}
