package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePrice holds the price and real duration of a service for one
// vehicle type. At most one active row per (service, vehicle type) pair.
type ServicePrice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_vehicle,priority:1" json:"serviceId"`
	VehicleTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_vehicle,priority:2" json:"vehicleTypeId"`

	Price           int  `gorm:"not null" json:"price"` // whole currency units
	DurationMinutes int  `gorm:"not null" json:"durationMinutes"`
	IsActive        bool `gorm:"default:true" json:"isActive"`
}

func (p *ServicePrice) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
