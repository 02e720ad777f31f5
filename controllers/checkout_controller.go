package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/middleware"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/services"
)

type CheckoutController struct {
	Service services.CheckoutService
}

func NewCheckoutController(service services.CheckoutService) *CheckoutController {
	return &CheckoutController{Service: service}
}

// CreatePaymentOrder opens a gateway payment intent for the active cart.
func (cc *CheckoutController) CreatePaymentOrder(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	order, appErr := cc.Service.CreatePaymentOrder(c.Request.Context(), customerID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gateway_order": order})
}

// Checkout verifies the gateway callback and places the order.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	orders, appErr := cc.Service.PlaceOrder(c.Request.Context(), customerID, &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orders": orders})
}
