package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
}

func (c *ExpenseCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// Expense is the second append-only ledger, used for reporting alongside
// ServiceSale.
type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`

	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Description string    `gorm:"not null" json:"description"`
	Amount      int       `gorm:"not null" json:"amount"` // whole currency units
	ExpenseDate time.Time `gorm:"not null" json:"expenseDate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
