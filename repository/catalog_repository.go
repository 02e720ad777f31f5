package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/gorm"
)

// CatalogRepository exposes the read-only catalog lookups the cart and
// payment paths need. Catalog management itself lives elsewhere.
type CatalogRepository interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetSkuByID(ctx context.Context, id uuid.UUID) (*models.SizeVariant, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) GetSkuByID(ctx context.Context, id uuid.UUID) (*models.SizeVariant, error) {
	var sku models.SizeVariant
	if err := r.db.WithContext(ctx).First(&sku, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sku, nil
}
