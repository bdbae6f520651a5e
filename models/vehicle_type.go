package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleType struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
}

func (v *VehicleType) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
