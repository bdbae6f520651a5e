package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// ServiceSale is the append-only ledger entry produced by closing an
// appointment. It carries its own snapshot of customer/plate/services, so
// later edits or deletes of the appointment never alter history. The unique
// index on AppointmentID is what makes closing a one-time transition.
type ServiceSale struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"appointmentId"`

	ServiceDate time.Time `gorm:"not null" json:"serviceDate"` // day the job closed, not when the row was written
	CreatedAt   time.Time `json:"createdAt"`

	VehicleTypeName string `json:"vehicleTypeName"`
	Plate           string `json:"plate"`
	CustomerName    string `json:"customerName"`
	Services        string `json:"services"`

	BaseAmount     int `gorm:"not null" json:"baseAmount"`
	DiscountAmount int `gorm:"not null;default:0" json:"discountAmount"`
	FinalAmount    int `gorm:"not null" json:"finalAmount"` // max(base - discount, 0)

	PaymentMethod string `json:"paymentMethod"` // set only when status is completed
	Status        string `gorm:"not null" json:"status"`
	Notes         string `json:"notes"`
}

func (s *ServiceSale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
