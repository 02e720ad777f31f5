package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/middleware"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/services"
)

type OrderController struct {
	Service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	orders, appErr := oc.Service.GetOrders(c.Request.Context(), customerID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, appErr := oc.Service.GetOrderByID(c.Request.Context(), customerID, orderID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (oc *OrderController) GetCancelledOrders(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	orders, appErr := oc.Service.GetCancelledOrders(c.Request.Context(), customerID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, appErr := oc.Service.CancelOrder(c.Request.Context(), customerID, orderID)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
