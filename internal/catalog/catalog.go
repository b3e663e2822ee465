package catalog

import (
	"time"
)

// ServiceType groups catalog entries on the portal.
const (
	TypeSocial   = "SOCIAL"
	TypeCulturel = "CULTUREL"
	TypeSportif  = "SPORTIF"
	TypeVoyage   = "VOYAGE"
	TypeSante    = "SANTE"
)

func ServiceTypes() []string {
	return []string{TypeSocial, TypeCulturel, TypeSportif, TypeVoyage, TypeSante}
}

func ValidServiceType(t string) bool {
	for _, known := range ServiceTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// CatalogService is one offering members can file demandes against.
type CatalogService struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (CatalogService) TableName() string {
	return "services"
}

type RepositoryAPI interface {
	GetAll() ([]*CatalogService, error)
	GetActive() ([]*CatalogService, error)
	GetByID(id int64) (*CatalogService, error)
	Create(cs *CatalogService) error
	Update(cs *CatalogService) error
	Delete(id int64) error
}
