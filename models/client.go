package models

import "time"

// Client is keyed by the normalized plate and holds the latest known contact
// data. It is upserted as a side effect of creating or editing appointments;
// a blank incoming field never overwrites a stored non-blank value.
type Client struct {
	Plate     string    `gorm:"primary_key" json:"plate"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
