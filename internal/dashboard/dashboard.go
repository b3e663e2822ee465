package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/transport"
	"github.com/aosmicepp/platform/pkg/logger"
)

// Stats is the admin landing-page counters block.
type Stats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalDemandes     int64 `json:"totalDemandes"`
	PendingDemandes   int64 `json:"pendingDemandes"`
	TotalReclamations int64 `json:"totalReclamations"`
	TotalMessages     int64 `json:"totalMessages"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

type UserCounter interface {
	Count() (int64, error)
}

type DemandeCounter interface {
	Count() (int64, error)
	CountPending() (int64, error)
}

type ReclamationCounter interface {
	Count() (int64, error)
}

type MessageCounter interface {
	Count() (int64, error)
	CountUnread() (int64, error)
}

type Service struct {
	users        UserCounter
	demandes     DemandeCounter
	reclamations ReclamationCounter
	messages     MessageCounter
	logger       *slog.Logger
}

func NewService(users UserCounter, demandes DemandeCounter, reclamations ReclamationCounter, messages MessageCounter, lg *slog.Logger) *Service {
	return &Service{
		users:        users,
		demandes:     demandes,
		reclamations: reclamations,
		messages:     messages,
		logger:       lg,
	}
}

func (s *Service) GetStats() (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TotalUsers, err = s.users.Count(); err != nil {
		return nil, internal.NewInternalError("failed to count users", err)
	}
	if stats.TotalDemandes, err = s.demandes.Count(); err != nil {
		return nil, internal.NewInternalError("failed to count demandes", err)
	}
	if stats.PendingDemandes, err = s.demandes.CountPending(); err != nil {
		return nil, internal.NewInternalError("failed to count pending demandes", err)
	}
	if stats.TotalReclamations, err = s.reclamations.Count(); err != nil {
		return nil, internal.NewInternalError("failed to count reclamations", err)
	}
	if stats.TotalMessages, err = s.messages.Count(); err != nil {
		return nil, internal.NewInternalError("failed to count messages", err)
	}
	if stats.UnreadMessages, err = s.messages.CountUnread(); err != nil {
		return nil, internal.NewInternalError("failed to count unread messages", err)
	}

	return stats, nil
}

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}
