package reclamation

import (
	"context"
	"log/slog"
	"time"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/core/events"
	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/user"
)

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

func (s *Service) GetAll() ([]*Reclamation, error) {
	reclamations, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list reclamations", err)
	}
	return reclamations, nil
}

func (s *Service) GetByID(id int64) (*Reclamation, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrReclamationNotFound
	}
	return rec, nil
}

func (s *Service) Count() (int64, error) {
	return s.repo.Count()
}

// Create opens a reclamation in OUVERTE; priority defaults to MOYENNE.
func (s *Service) Create(ctx context.Context, userID int64, dto CreateReclamationDTO) (*Reclamation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	priority := Priority(dto.Priority)
	if priority == "" {
		priority = PriorityMoyenne
	}

	rec := &Reclamation{
		Subject:  dto.Subject,
		Content:  dto.Content,
		Status:   StatusOuverte,
		Priority: priority,
		UserID:   userID,
	}

	if err := s.repo.Create(rec); err != nil {
		return nil, internal.NewInternalError("failed to create reclamation", err)
	}

	s.logger.Info("reclamation created", "reclamation_id", rec.ID, "user_id", userID, "priority", rec.Priority)
	s.publish(ctx, events.TypeReclamationCreated, map[string]interface{}{
		"reclamation_id": rec.ID,
		"user_id":        userID,
		"subject":        rec.Subject,
	})

	return rec, nil
}

// Assign hands the reclamation to an active support user.
func (s *Service) Assign(ctx context.Context, id, assigneeID int64) (*Reclamation, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrReclamationNotFound
	}
	if rec.Status.Terminal() {
		return nil, internal.NewValidationError("reclamation is closed and cannot change", internal.ErrCodeInvalidStatus)
	}

	assignee, err := s.users.GetByID(assigneeID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	if !assignee.IsActive || !rbac.Matches(assignee.RoleValue(), rbac.RoleSupport) {
		return nil, internal.ErrAssigneeNotSupport
	}

	rec.AssigneeID = &assigneeID
	if rec.Status == StatusOuverte {
		rec.Status = StatusEnCours
	}
	if err := s.repo.Update(rec); err != nil {
		return nil, internal.NewInternalError("failed to assign reclamation", err)
	}

	s.logger.Info("reclamation assigned", "reclamation_id", rec.ID, "assignee_id", assigneeID)
	s.publish(ctx, events.TypeReclamationAssigned, map[string]interface{}{
		"reclamation_id": rec.ID,
		"assignee_id":    assigneeID,
	})

	return rec, nil
}

func (s *Service) Unassign(ctx context.Context, id int64) (*Reclamation, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrReclamationNotFound
	}
	if rec.Status.Terminal() {
		return nil, internal.NewValidationError("reclamation is closed and cannot change", internal.ErrCodeInvalidStatus)
	}

	rec.AssigneeID = nil
	if err := s.repo.Update(rec); err != nil {
		return nil, internal.NewInternalError("failed to unassign reclamation", err)
	}

	s.publish(ctx, events.TypeReclamationAssigned, map[string]interface{}{
		"reclamation_id": rec.ID,
	})

	return rec, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*Reclamation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrReclamationNotFound
	}
	if rec.Status.Terminal() {
		return nil, internal.NewValidationError("reclamation is closed and cannot change", internal.ErrCodeInvalidStatus)
	}

	previous := rec.Status
	rec.Status = Status(dto.Status)
	if dto.Response != "" {
		rec.Response = dto.Response
	}
	if rec.Status == StatusResolue || rec.Status == StatusFermee {
		now := time.Now()
		rec.ResolvedAt = &now
	}

	if err := s.repo.Update(rec); err != nil {
		return nil, internal.NewInternalError("failed to update reclamation status", err)
	}

	s.logger.Info("reclamation status changed", "reclamation_id", rec.ID, "from", previous, "to", rec.Status)
	s.publish(ctx, events.TypeReclamationStatusChanged, map[string]interface{}{
		"reclamation_id": rec.ID,
		"user_id":        rec.UserID,
		"from":           string(previous),
		"to":             string(rec.Status),
	})

	return rec, nil
}

func (s *Service) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, events.NewEvent(eventType, data))
}
