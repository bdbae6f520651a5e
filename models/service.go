package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"` // fallback when no vehicle-specific price row exists
	IsActive        bool      `gorm:"default:true" json:"isActive"`

	Prices []ServicePrice `gorm:"foreignKey:ServiceID" json:"prices,omitempty"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
