package message

import (
	"log/slog"

	"github.com/aosmicepp/platform/internal"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit accepts a contact-form message from an anonymous visitor.
func (s *Service) Submit(dto ContactDTO) (*MessageContact, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m := &MessageContact{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Content: dto.Content,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, internal.NewInternalError("failed to store message", err)
	}

	s.logger.Info("contact message received", "message_id", m.ID, "email", m.Email)
	return m, nil
}

func (s *Service) GetAll() ([]*MessageContact, error) {
	messages, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list messages", err)
	}
	return messages, nil
}

func (s *Service) GetByID(id int64) (*MessageContact, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMessageNotFound
	}
	return m, nil
}

func (s *Service) MarkRead(id int64) (*MessageContact, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMessageNotFound
	}

	m.Read = true
	if err := s.repo.Update(m); err != nil {
		return nil, internal.NewInternalError("failed to mark message read", err)
	}
	return m, nil
}

func (s *Service) Count() (int64, error) {
	return s.repo.Count()
}

func (s *Service) CountUnread() (int64, error) {
	return s.repo.CountUnread()
}
