package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"gorm.io/gorm"
)

// CheckoutRepository is the unit of work for order placement. RunInTransaction
// hands the callback a repository bound to the transaction; every write made
// through it becomes durable together on commit and vanishes together on
// rollback, including stock decrements of lines reserved before a later line
// failed.
type CheckoutRepository interface {
	RunInTransaction(ctx context.Context, fn func(tx CheckoutRepository) error) error
	CreatePaymentRecord(ctx context.Context, record *models.PaymentRecord) error
	GetSkuByID(ctx context.Context, id uuid.UUID) (*models.SizeVariant, error)
	// DecrementStockIfAvailable performs the atomic conditional decrement:
	// stock -= qty guarded by stock >= qty. Returns false when the guard fails.
	DecrementStockIfAvailable(ctx context.Context, sizeVariantID uuid.UUID, qty int) (bool, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	// MarkCartItemOrdered flips the line's is_ordered flag. Reports
	// gorm.ErrRecordNotFound when no active line matches, so the
	// surrounding transaction aborts instead of committing an order
	// for a vanished line.
	MarkCartItemOrdered(ctx context.Context, itemID uuid.UUID) error
}

// GormCheckoutRepository implements CheckoutRepository using GORM
type GormCheckoutRepository struct {
	db *gorm.DB
}

func NewGormCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

func (r *GormCheckoutRepository) RunInTransaction(ctx context.Context, fn func(tx CheckoutRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCheckoutRepository{db: tx})
	})
}

func (r *GormCheckoutRepository) CreatePaymentRecord(ctx context.Context, record *models.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *GormCheckoutRepository) GetSkuByID(ctx context.Context, id uuid.UUID) (*models.SizeVariant, error) {
	var sku models.SizeVariant
	if err := r.db.WithContext(ctx).First(&sku, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sku, nil
}

func (r *GormCheckoutRepository) DecrementStockIfAvailable(ctx context.Context, sizeVariantID uuid.UUID, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.SizeVariant{}).
		Where("id = ? AND stock >= ?", sizeVariantID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormCheckoutRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormCheckoutRepository) MarkCartItemOrdered(ctx context.Context, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND is_ordered = false", itemID).
		Update("is_ordered", true)
	if res.Error != nil {
		return res.Error
	}
	// The line vanished (or was already ordered) since the cart was read;
	// abort rather than commit an order for it.
	if res.RowsAffected != 1 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
