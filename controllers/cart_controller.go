package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/middleware"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/services"
)

type CartController struct {
	Service services.CartService
}

func NewCartController(service services.CartService) *CartController {
	return &CartController{Service: service}
}

// GetCart returns all non-ordered items with product and price data joined.
func (cc *CartController) GetCart(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	items, appErr := cc.Service.ListCart(c.Request.Context(), customerID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_items": items})
}

// AddItem adds units of a size variant, clamped to the per-line cap.
func (cc *CartController) AddItem(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, appErr := cc.Service.AddItem(c.Request.Context(), customerID, &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cart_item": item})
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateQuantity overwrites a line's quantity; zero deletes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, appErr := cc.Service.UpdateQuantity(c.Request.Context(), customerID, itemID, *req.Quantity)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, gin.H{"message": "cart item deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_item": item})
}

// RemoveItem deletes a non-ordered line owned by the customer.
func (cc *CartController) RemoveItem(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
		return
	}

	if appErr := cc.Service.RemoveItem(c.Request.Context(), customerID, itemID); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.Status(http.StatusNoContent)
}
