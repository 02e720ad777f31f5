package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxCartQuantity caps how many units of one size variant a customer may hold.
const MaxCartQuantity = 5

// CartItem is one (customer, size variant) cart line. Once IsOrdered flips to
// true during order placement the line is never mutated again. The partial
// unique index keeps at most one active line per customer and size variant.
type CartItem struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_active_cart_line,where:is_ordered = false" json:"customer_id"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ColorVariantID uuid.UUID `gorm:"type:uuid;not null" json:"color_variant_id"`
	SizeVariantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_active_cart_line,where:is_ordered = false" json:"size_variant_id"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	IsOrdered      bool      `gorm:"not null;default:false" json:"is_ordered"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Product      *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ColorVariant *ColorVariant `gorm:"foreignKey:ColorVariantID" json:"color_variant,omitempty"`
	SizeVariant  *SizeVariant  `gorm:"foreignKey:SizeVariantID" json:"size_variant,omitempty"`
}
