package models

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle states.
const (
	OrderStatusOrdered   = "ORDERED"
	OrderStatusProcessed = "PROCESSED"
	OrderStatusTransit   = "TRANSIT"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// PaymentRecord is written once per checkout attempt, before inventory is
// touched. It represents a payment already captured at the gateway; it is
// never mutated afterward.
type PaymentRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GatewayOrderID   string    `gorm:"not null" json:"gateway_order_id"`
	GatewayPaymentID string    `gorm:"not null;uniqueIndex" json:"gateway_payment_id"`
	GatewaySignature string    `gorm:"not null" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Order is one cart line frozen at checkout. LockedPrice is the size
// variant's selling price at the moment its stock was decremented; the
// address fields are copied by value. Amounts are in whole currency units.
type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	CartItemID      uuid.UUID `gorm:"type:uuid;not null" json:"cart_item_id"`
	SizeVariantID   uuid.UUID `gorm:"type:uuid;not null" json:"size_variant_id"`
	PaymentRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"payment_record_id"`
	LockedPrice     int       `gorm:"not null" json:"locked_price"`
	TotalAmount     int       `gorm:"not null" json:"total_amount"`
	Status          string    `gorm:"type:varchar(20);not null;default:'ORDERED'" json:"status"`

	// Address snapshot, immutable once written.
	ContactNumber string `gorm:"not null" json:"contact_number"`
	HouseNumber   string `json:"house_number"`
	Landmark      string `json:"landmark"`
	Town          string `gorm:"not null" json:"town"`
	City          string `gorm:"not null" json:"city"`
	Pin           string `gorm:"not null" json:"pin"`
	State         string `gorm:"not null" json:"state"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CartItem *CartItem `gorm:"foreignKey:CartItemID" json:"item,omitempty"`
}
