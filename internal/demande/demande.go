package demande

import (
	"time"
)

// Status is the demande lifecycle state. EN_ATTENTE moves to EN_COURS, and
// from there to one of the terminal states TERMINEE or REJETEE.
type Status string

const (
	StatusEnAttente Status = "EN_ATTENTE"
	StatusEnCours   Status = "EN_COURS"
	StatusTerminee  Status = "TERMINEE"
	StatusRejetee   Status = "REJETEE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusEnAttente, StatusEnCours, StatusTerminee, StatusRejetee:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusTerminee || s == StatusRejetee
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch s {
	case StatusEnAttente:
		return next == StatusEnCours || next == StatusRejetee
	case StatusEnCours:
		return next == StatusTerminee || next == StatusRejetee
	}
	return false
}

// Demande is a member service request.
type Demande struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	ServiceType string     `json:"serviceType" gorm:"column:service_type"`
	Status      Status     `json:"status"`
	UserID      int64      `json:"userId" gorm:"column:user_id"`
	AssigneeID  *int64     `json:"assigneeId" gorm:"column:assignee_id"`
	Comment     string     `json:"comment"`
	ResolvedAt  *time.Time `json:"resolvedAt" gorm:"column:resolved_at"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Demande) TableName() string {
	return "demandes"
}

type RepositoryAPI interface {
	GetAll() ([]*Demande, error)
	GetByID(id int64) (*Demande, error)
	GetByUserID(userID int64) ([]*Demande, error)
	GetRecent(limit int) ([]*Demande, error)
	Create(d *Demande) error
	Update(d *Demande) error
	Count() (int64, error)
	CountByStatus(status Status) (int64, error)
}
