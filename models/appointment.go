package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is mutable until a ServiceSale references it. Services holds a
// comma-joined snapshot of the service names chosen at creation/edit time,
// not foreign keys, so renaming a service never rewrites past appointments.
type Appointment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName string    `json:"customerName"`
	Plate        string    `gorm:"index" json:"plate"` // normalized: uppercase, no whitespace
	Phone        string    `json:"phone"`
	Services     string    `gorm:"not null" json:"services"` // e.g. "Wash Morado, Motor"
	StartTime    time.Time `gorm:"not null" json:"startTime"`
	EndTime      time.Time `gorm:"not null" json:"endTime"` // derived: start + estimated duration

	VehicleTypeID *uuid.UUID   `gorm:"type:uuid;index" json:"vehicleTypeId"`
	VehicleType   *VehicleType `gorm:"foreignKey:VehicleTypeID" json:"vehicleType,omitempty"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
