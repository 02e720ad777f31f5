package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock status values for a size variant.
const (
	SkuInStock  = "IN-STOCK"
	SkuOutStock = "OUT-STOCK"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	IsArchived  bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ColorVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
}

// SizeVariant is the purchasable SKU: its stock is only ever mutated by the
// conditional decrement during order placement.
type SizeVariant struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:25;not null" json:"name"`
	MRP            int       `gorm:"column:mrp;not null" json:"mrp"`
	SellingPrice   int       `gorm:"not null" json:"selling_price"`
	Stock          int       `gorm:"not null;check:stock >= 0" json:"stock"`
	Status         string    `gorm:"type:varchar(20);not null;default:'IN-STOCK'" json:"status"`
	ColorVariantID uuid.UUID `gorm:"type:uuid;not null;index" json:"color_variant_id"`
}
