package catalog

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

func (s *Service) GetAll() ([]*CatalogService, error) {
	services, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list services", err)
	}
	return services, nil
}

// GetActive is the member-facing listing.
func (s *Service) GetActive() ([]*CatalogService, error) {
	services, err := s.repo.GetActive()
	if err != nil {
		return nil, internal.NewInternalError("failed to list active services", err)
	}
	return services, nil
}

func (s *Service) GetByID(id int64) (*CatalogService, error) {
	cs, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrServiceNotFound
	}
	return cs, nil
}

func (s *Service) Create(dto ServiceDTO) (*CatalogService, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	cs := &CatalogService{
		Name:        dto.Name,
		Description: dto.Description,
		Type:        dto.Type,
		IsActive:    true,
	}
	if err := s.repo.Create(cs); err != nil {
		return nil, internal.NewInternalError("failed to create service", err)
	}

	s.logger.Info("catalog service created", "service_id", cs.ID, "type", cs.Type)
	return cs, nil
}

func (s *Service) Update(id int64, dto ServiceDTO) (*CatalogService, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	cs, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrServiceNotFound
	}

	cs.Name = dto.Name
	cs.Description = dto.Description
	cs.Type = dto.Type
	if err := s.repo.Update(cs); err != nil {
		return nil, internal.NewInternalError("failed to update service", err)
	}
	return cs, nil
}

func (s *Service) ToggleStatus(id int64) (*CatalogService, error) {
	cs, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrServiceNotFound
	}

	cs.IsActive = !cs.IsActive
	if err := s.repo.Update(cs); err != nil {
		return nil, internal.NewInternalError("failed to toggle service", err)
	}

	s.logger.Info("catalog service toggled", "service_id", cs.ID, "is_active", cs.IsActive)
	return cs, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrServiceNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete service", err)
	}
	return nil
}
