package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/gorm"
)

type AddressRepository interface {
	FindByIDAndCustomer(ctx context.Context, addressID, customerID uuid.UUID) (*models.Address, error)
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindByIDAndCustomer(ctx context.Context, addressID, customerID uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", addressID, customerID).
		First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}
