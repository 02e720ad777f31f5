package services

import (
	"context"

	"github.com/google/uuid"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService covers the order history surface: listing and cancellation.
// Cancellation only flips the status; stock and payment are untouched here.
type OrderService interface {
	GetOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, *apperrors.Error)
	GetOrderByID(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, *apperrors.Error)
	GetCancelledOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, *apperrors.Error)
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, *apperrors.Error)
}

type orderServiceImpl struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{orders: orders, logger: logger}
}

func (s *orderServiceImpl) GetOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, *apperrors.Error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list orders",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return orders, nil
}

func (s *orderServiceImpl) GetOrderByID(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByIDAndCustomer(ctx, orderID, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return order, nil
}

func (s *orderServiceImpl) GetCancelledOrders(ctx context.Context, customerID uuid.UUID) ([]models.Order, *apperrors.Error) {
	orders, err := s.orders.ListByCustomerAndStatus(ctx, customerID, models.OrderStatusCancelled)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return orders, nil
}

func (s *orderServiceImpl) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByIDAndCustomer(ctx, orderID, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}

	if order.Status == models.OrderStatusCancelled {
		return order, nil
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled); err != nil {
		s.logger.Error("Failed to cancel order",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	order.Status = models.OrderStatusCancelled
	return order, nil
}
