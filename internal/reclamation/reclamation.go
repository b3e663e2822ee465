package reclamation

import (
	"time"
)

type Status string

const (
	StatusOuverte Status = "OUVERTE"
	StatusEnCours Status = "EN_COURS"
	StatusResolue Status = "RESOLUE"
	StatusFermee  Status = "FERMEE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOuverte, StatusEnCours, StatusResolue, StatusFermee:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusFermee
}

type Priority string

const (
	PriorityBasse   Priority = "BASSE"
	PriorityMoyenne Priority = "MOYENNE"
	PriorityHaute   Priority = "HAUTE"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityBasse, PriorityMoyenne, PriorityHaute:
		return true
	}
	return false
}

// Reclamation is a member complaint.
type Reclamation struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Subject    string     `json:"subject"`
	Content    string     `json:"content"`
	Status     Status     `json:"status"`
	Priority   Priority   `json:"priority"`
	UserID     int64      `json:"userId" gorm:"column:user_id"`
	AssigneeID *int64     `json:"assigneeId" gorm:"column:assignee_id"`
	Response   string     `json:"response"`
	ResolvedAt *time.Time `json:"resolvedAt" gorm:"column:resolved_at"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Reclamation) TableName() string {
	return "reclamations"
}

type RepositoryAPI interface {
	GetAll() ([]*Reclamation, error)
	GetByID(id int64) (*Reclamation, error)
	Create(rec *Reclamation) error
	Update(rec *Reclamation) error
	Count() (int64, error)
}
