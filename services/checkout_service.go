package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errStockConflict marks an abort caused by the conditional decrement guard,
// so the boundary can report 409 instead of a generic failure.
var errStockConflict = errors.New("insufficient stock")

type CheckoutRequest struct {
	AddressID        uuid.UUID `json:"address_id"`
	GatewayOrderID   string    `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string    `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string    `json:"gateway_signature" binding:"required"`
}

// CheckoutService turns the customer's active cart into payment-backed
// orders, or refunds the captured payment when it cannot.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, req *CheckoutRequest) ([]models.Order, *apperrors.Error)
	// CreatePaymentOrder opens a gateway payment intent for the current
	// active cart total. Amount is sent in paise.
	CreatePaymentOrder(ctx context.Context, customerID uuid.UUID) (*GatewayOrder, *apperrors.Error)
}

// RefundCompensator reverses an already-captured payment when the order it
// paid for cannot be fulfilled.
type RefundCompensator interface {
	Refund(ctx context.Context, gatewayPaymentID string) (*GatewayRefund, error)
}

type checkoutServiceImpl struct {
	verifier    *PaymentVerifier
	checkout    repository.CheckoutRepository
	carts       repository.CartRepository
	addresses   repository.AddressRepository
	catalog     repository.CatalogRepository
	refunder    RefundCompensator
	gateway     PaymentGateway
	idempotency repository.IdempotencyGuard // nil when redis is not configured
	logger      *zap.Logger
}

func NewCheckoutService(
	verifier *PaymentVerifier,
	checkout repository.CheckoutRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	catalog repository.CatalogRepository,
	refunder RefundCompensator,
	gateway PaymentGateway,
	idempotency repository.IdempotencyGuard,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		verifier:    verifier,
		checkout:    checkout,
		carts:       carts,
		addresses:   addresses,
		catalog:     catalog,
		refunder:    refunder,
		gateway:     gateway,
		idempotency: idempotency,
		logger:      logger,
	}
}

// PlaceOrder runs the checkout state machine:
//
//	Validate -> CapturePaymentRecord -> ReserveInventory per line -> Commit
//
// with a single compensating branch: any failure after the payment record is
// written refunds the captured payment before the error surfaces. All writes
// happen in one transaction, so an abort leaves no partial orders and no
// lost stock.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, customerID uuid.UUID, req *CheckoutRequest) ([]models.Order, *apperrors.Error) {
	// Signature first: a forged callback must cause zero writes.
	if !s.verifier.Verify(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		return nil, apperrors.ErrSignatureMismatch
	}

	if req.AddressID == uuid.Nil {
		return nil, apperrors.ErrMissingAddress
	}

	address, err := s.addresses.FindByIDAndCustomer(ctx, req.AddressID, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAddressNotFound
		}
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}

	items, err := s.carts.ListActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	if s.idempotency != nil {
		seen, err := s.idempotency.Seen(ctx, req.GatewayPaymentID)
		if err != nil {
			// Redis being down must not block checkout.
			s.logger.Warn("Idempotency lookup failed", zap.Error(err))
		} else if seen {
			return nil, apperrors.ErrDuplicateCheckout
		}
	}

	record := &models.PaymentRecord{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
	}

	var orders []models.Order
	txErr := s.checkout.RunInTransaction(ctx, func(tx repository.CheckoutRepository) error {
		if err := tx.CreatePaymentRecord(ctx, record); err != nil {
			return fmt.Errorf("capture payment record: %w", err)
		}

		for _, item := range items {
			ok, err := tx.DecrementStockIfAvailable(ctx, item.SizeVariantID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock for %s: %w", item.SizeVariantID, err)
			}
			if !ok {
				return errStockConflict
			}

			// Lock in the price as it stands after the decrement.
			sku, err := tx.GetSkuByID(ctx, item.SizeVariantID)
			if err != nil {
				return fmt.Errorf("read size variant %s: %w", item.SizeVariantID, err)
			}

			order := models.Order{
				CustomerID:      customerID,
				CartItemID:      item.ID,
				SizeVariantID:   item.SizeVariantID,
				PaymentRecordID: record.ID,
				LockedPrice:     sku.SellingPrice,
				TotalAmount:     sku.SellingPrice * item.Quantity,
				Status:          models.OrderStatusOrdered,
				ContactNumber:   address.ContactNumber,
				HouseNumber:     address.HouseNumber,
				Landmark:        address.Landmark,
				Town:            address.Town,
				City:            address.City,
				Pin:             address.Pin,
				State:           address.State,
			}
			if err := tx.CreateOrder(ctx, &order); err != nil {
				return fmt.Errorf("create order for item %s: %w", item.ID, err)
			}
			if err := tx.MarkCartItemOrdered(ctx, item.ID); err != nil {
				return fmt.Errorf("mark item %s ordered: %w", item.ID, err)
			}
			orders = append(orders, order)
		}
		return nil
	})

	if txErr != nil {
		// The payment was captured at the gateway before this attempt, so
		// any abort past validation owes the customer a refund.
		s.compensate(ctx, req.GatewayPaymentID, txErr)
		if errors.Is(txErr, errStockConflict) {
			return nil, apperrors.ErrStockConflict
		}
		return nil, apperrors.WithCause(apperrors.ErrTransactionFailure, txErr)
	}

	if s.idempotency != nil {
		if err := s.idempotency.Mark(ctx, req.GatewayPaymentID, record.ID.String()); err != nil {
			s.logger.Warn("Idempotency mark failed", zap.Error(err))
		}
	}

	s.logger.Info("Checkout committed",
		zap.String("customer_id", customerID.String()),
		zap.String("gateway_payment_id", req.GatewayPaymentID),
		zap.Int("orders", len(orders)),
	)
	return orders, nil
}

// compensate issues the refund and records the outcome. A refund failure is
// logged for out-of-band handling; it never replaces the checkout error.
func (s *checkoutServiceImpl) compensate(ctx context.Context, gatewayPaymentID string, cause error) {
	refund, err := s.refunder.Refund(ctx, gatewayPaymentID)
	if err != nil {
		s.logger.Error("Refund failed after aborted checkout",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.NamedError("checkout_error", cause),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Refund issued for aborted checkout",
		zap.String("gateway_payment_id", gatewayPaymentID),
		zap.String("refund_id", refund.ID),
		zap.String("refund_status", refund.Status),
		zap.NamedError("checkout_error", cause),
	)
}

func (s *checkoutServiceImpl) CreatePaymentOrder(ctx context.Context, customerID uuid.UUID) (*GatewayOrder, *apperrors.Error) {
	items, err := s.carts.ListActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	total := 0
	for _, item := range items {
		sku := item.SizeVariant
		if sku == nil {
			loaded, err := s.catalog.GetSkuByID(ctx, item.SizeVariantID)
			if err != nil {
				return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
			}
			sku = loaded
		}
		total += sku.SellingPrice * item.Quantity
	}

	// The gateway takes the amount in paise.
	order, err := s.gateway.CreateOrder(ctx, total*100, "INR", "order_rcpt_"+uuid.NewString())
	if err != nil {
		s.logger.Error("Gateway order create failed",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return order, nil
}

// gatewayRefunder is the production RefundCompensator: fetch the captured
// amount, convert paise to whole units, push the refund back through the
// gateway.
type gatewayRefunder struct {
	gateway PaymentGateway
}

func NewGatewayRefunder(gateway PaymentGateway) RefundCompensator {
	return &gatewayRefunder{gateway: gateway}
}

func (r *gatewayRefunder) Refund(ctx context.Context, gatewayPaymentID string) (*GatewayRefund, error) {
	payment, err := r.gateway.FetchPayment(ctx, gatewayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment %s: %w", gatewayPaymentID, err)
	}
	amount := payment.Amount / 100
	refund, err := r.gateway.RefundPayment(ctx, gatewayPaymentID, amount)
	if err != nil {
		return nil, fmt.Errorf("refund payment %s: %w", gatewayPaymentID, err)
	}
	return refund, nil
}
