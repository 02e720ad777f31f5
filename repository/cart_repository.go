package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/gorm"
)

// CartRepository is the store for cart lines. Only non-ordered lines are
// visible through it; ordered lines belong to the order history.
type CartRepository interface {
	FindActiveBySku(ctx context.Context, customerID, sizeVariantID uuid.UUID) (*models.CartItem, error)
	FindActiveByID(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error)
	ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	Save(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindActiveBySku(ctx context.Context, customerID, sizeVariantID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND size_variant_id = ? AND is_ordered = false", customerID, sizeVariantID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) FindActiveByID(ctx context.Context, itemID, customerID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ? AND is_ordered = false", itemID, customerID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("ColorVariant").
		Preload("SizeVariant").
		Where("customer_id = ? AND is_ordered = false", customerID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormCartRepository) Save(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormCartRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND is_ordered = false", itemID).
		Delete(&models.CartItem{}).Error
}
