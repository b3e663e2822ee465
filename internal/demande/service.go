package demande

import (
	"context"
	"log/slog"
	"time"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/events"
	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/user"
)

const recentLimit = 10

// UserDirectory is the slice of the user repository the demande workflow
// needs for assignment checks.
type UserDirectory interface {
	GetByID(id int64) (*user.User, error)
}

type Service struct {
	repo   RepositoryAPI
	users  UserDirectory
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, users UserDirectory, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Demande, error) {
	demandes, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list demandes", err)
	}
	return demandes, nil
}

func (s *Service) GetByID(id int64) (*Demande, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrDemandeNotFound
	}
	return d, nil
}

func (s *Service) GetByUserID(userID int64) ([]*Demande, error) {
	demandes, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list demandes for user", err)
	}
	return demandes, nil
}

func (s *Service) GetRecent() ([]*Demande, error) {
	return s.repo.GetRecent(recentLimit)
}

func (s *Service) Count() (int64, error) {
	return s.repo.Count()
}

func (s *Service) CountPending() (int64, error) {
	return s.repo.CountByStatus(StatusEnAttente)
}

// Create opens a new demande in EN_ATTENTE for the calling user.
func (s *Service) Create(ctx context.Context, userID int64, dto CreateDemandeDTO) (*Demande, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := &Demande{
		Subject:     dto.Subject,
		Description: dto.Description,
		ServiceType: dto.ServiceType,
		Status:      StatusEnAttente,
		UserID:      userID,
	}

	if err := s.repo.Create(d); err != nil {
		return nil, internal.NewInternalError("failed to create demande", err)
	}

	s.logger.Info("demande created", "demande_id", d.ID, "user_id", userID, "service_type", d.ServiceType)
	s.publish(ctx, events.TypeDemandeCreated, map[string]interface{}{
		"demande_id": d.ID,
		"user_id":    userID,
		"subject":    d.Subject,
	})

	return d, nil
}

// UpdateStatus moves the demande along its lifecycle. Terminal demandes are
// immutable; invalid transitions are rejected.
func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*Demande, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrDemandeNotFound
	}

	next := Status(dto.Status)
	if d.Status.Terminal() {
		return nil, internal.ErrDemandeImmutable
	}
	if !d.Status.CanTransitionTo(next) {
		return nil, internal.NewValidationError("invalid status transition", internal.ErrCodeInvalidStatus)
	}

	previous := d.Status
	d.Status = next
	if dto.Comment != "" {
		d.Comment = dto.Comment
	}
	if next.Terminal() {
		now := time.Now()
		d.ResolvedAt = &now
	}

	if err := s.repo.Update(d); err != nil {
		return nil, internal.NewInternalError("failed to update demande status", err)
	}

	s.logger.Info("demande status changed", "demande_id", d.ID, "from", previous, "to", next)
	s.publish(ctx, events.TypeDemandeStatusChanged, map[string]interface{}{
		"demande_id": d.ID,
		"user_id":    d.UserID,
		"from":       string(previous),
		"to":         string(next),
	})

	return d, nil
}

// Assign sets or clears the assignee. The assignee must be an active
// support user.
func (s *Service) Assign(ctx context.Context, id int64, dto AssignDTO) (*Demande, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrDemandeNotFound
	}
	if d.Status.Terminal() {
		return nil, internal.ErrDemandeImmutable
	}

	if dto.AssigneeID != nil {
		assignee, err := s.users.GetByID(*dto.AssigneeID)
		if err != nil {
			return nil, internal.ErrUserNotFound
		}
		if !assignee.IsActive || !rbac.Matches(assignee.RoleValue(), rbac.RoleSupport) {
			return nil, internal.ErrAssigneeNotSupport
		}
	}

	d.AssigneeID = dto.AssigneeID
	if err := s.repo.Update(d); err != nil {
		return nil, internal.NewInternalError("failed to assign demande", err)
	}

	s.logger.Info("demande assignment changed", "demande_id", d.ID, "assignee_id", dto.AssigneeID)
	payload := map[string]interface{}{"demande_id": d.ID}
	if dto.AssigneeID != nil {
		payload["assignee_id"] = *dto.AssigneeID
	}
	s.publish(ctx, events.TypeDemandeAssigned, payload)

	return d, nil
}

func (s *Service) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, events.NewEvent(eventType, data))
}
