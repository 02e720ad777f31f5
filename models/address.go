package models

import "github.com/google/uuid"

// Address is owned by the customer; order placement copies its fields by
// value rather than keeping a live reference.
type Address struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	ContactNumber string    `gorm:"size:10;not null" json:"contact_number"`
	HouseNumber   string    `json:"house_number"`
	Landmark      string    `json:"landmark"`
	Town          string    `gorm:"not null" json:"town"`
	City          string    `gorm:"not null" json:"city"`
	Pin           string    `gorm:"size:6;not null" json:"pin"`
	State         string    `gorm:"not null" json:"state"`
}
