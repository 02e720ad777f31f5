package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status string) ([]models.Order, error)
	FindByIDAndCustomer(ctx context.Context, orderID, customerID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("CartItem").
		Preload("CartItem.Product").
		Preload("CartItem.SizeVariant").
		Preload("CartItem.ColorVariant").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) ListByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("CartItem").
		Preload("CartItem.Product").
		Preload("CartItem.SizeVariant").
		Where("customer_id = ? AND status = ?", customerID, status).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByIDAndCustomer(ctx context.Context, orderID, customerID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("CartItem").
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}
