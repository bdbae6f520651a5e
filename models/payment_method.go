package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
