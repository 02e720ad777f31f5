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

type AddItemRequest struct {
	ProductID      uuid.UUID `json:"product_id" binding:"required"`
	ColorVariantID uuid.UUID `json:"color_variant_id" binding:"required"`
	SizeVariantID  uuid.UUID `json:"size_variant_id" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,min=1"`
}

// CartService owns the cart business rules. Every mutation runs inside the
// serializer, so the read-check-write on the quantity cap cannot race.
type CartService interface {
	AddItem(ctx context.Context, customerID uuid.UUID, req *AddItemRequest) (*models.CartItem, *apperrors.Error)
	// UpdateQuantity overwrites the quantity; zero deletes the line and
	// returns a nil item.
	UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*models.CartItem, *apperrors.Error)
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) *apperrors.Error
	ListCart(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, *apperrors.Error)
}

type cartServiceImpl struct {
	carts      repository.CartRepository
	catalog    repository.CatalogRepository
	serializer *CartMutationSerializer
	logger     *zap.Logger
}

func NewCartService(
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	serializer *CartMutationSerializer,
	logger *zap.Logger,
) CartService {
	return &cartServiceImpl{
		carts:      carts,
		catalog:    catalog,
		serializer: serializer,
		logger:     logger,
	}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, customerID uuid.UUID, req *AddItemRequest) (*models.CartItem, *apperrors.Error) {
	if req.Quantity < 1 {
		return nil, apperrors.ErrQuantityRange
	}

	if _, err := s.catalog.GetProductByID(ctx, req.ProductID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	if _, err := s.catalog.GetSkuByID(ctx, req.SizeVariantID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSkuNotFound
		}
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}

	value, err := s.serializer.Do(ctx, func() (interface{}, error) {
		existing, err := s.carts.FindActiveBySku(ctx, customerID, req.SizeVariantID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}

		if existing != nil {
			// Clamp the added amount so the line never exceeds the cap.
			add := req.Quantity
			if room := models.MaxCartQuantity - existing.Quantity; add > room {
				add = room
			}
			if add <= 0 {
				return existing, nil
			}
			existing.Quantity += add
			if err := s.carts.Save(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}

		quantity := req.Quantity
		if quantity > models.MaxCartQuantity {
			quantity = models.MaxCartQuantity
		}
		item := &models.CartItem{
			CustomerID:     customerID,
			ProductID:      req.ProductID,
			ColorVariantID: req.ColorVariantID,
			SizeVariantID:  req.SizeVariantID,
			Quantity:       quantity,
		}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	})
	if err != nil {
		s.logger.Error("Failed to add cart item",
			zap.String("customer_id", customerID.String()),
			zap.String("size_variant_id", req.SizeVariantID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return value.(*models.CartItem), nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*models.CartItem, *apperrors.Error) {
	if quantity < 0 || quantity > models.MaxCartQuantity {
		return nil, apperrors.ErrQuantityRange
	}

	value, err := s.serializer.Do(ctx, func() (interface{}, error) {
		item, err := s.carts.FindActiveByID(ctx, itemID, customerID)
		if err != nil {
			return nil, err
		}

		if quantity == 0 {
			if err := s.carts.Delete(ctx, item.ID); err != nil {
				return nil, err
			}
			return (*models.CartItem)(nil), nil
		}

		item.Quantity = quantity
		if err := s.carts.Save(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCartItemNotFound
		}
		s.logger.Error("Failed to update cart item",
			zap.String("cart_item_id", itemID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return value.(*models.CartItem), nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) *apperrors.Error {
	_, err := s.serializer.Do(ctx, func() (interface{}, error) {
		item, err := s.carts.FindActiveByID(ctx, itemID, customerID)
		if err != nil {
			return nil, err
		}
		return nil, s.carts.Delete(ctx, item.ID)
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCartItemNotFound
		}
		s.logger.Error("Failed to remove cart item",
			zap.String("cart_item_id", itemID.String()),
			zap.Error(err),
		)
		return apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListCart is read-only and deliberately bypasses the serializer.
func (s *cartServiceImpl) ListCart(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, *apperrors.Error) {
	items, err := s.carts.ListActiveByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list cart",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
		return nil, apperrors.WithCause(apperrors.ErrInternalServer, err)
	}
	return items, nil
}
