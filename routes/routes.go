package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/controllers"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	orders *controllers.OrderController,
) {
	auth := middleware.AuthMiddleware(jwtSecret)

	cartRoutes := r.Group("/cart")
	cartRoutes.Use(auth)
	cartRoutes.GET("", cart.GetCart)
	cartRoutes.POST("", cart.AddItem)
	cartRoutes.PUT("/:id", cart.UpdateQuantity)
	cartRoutes.DELETE("/:id", cart.RemoveItem)

	paymentRoutes := r.Group("/payment")
	paymentRoutes.Use(auth)
	paymentRoutes.POST("", checkout.CreatePaymentOrder)

	checkoutRoutes := r.Group("/checkout")
	checkoutRoutes.Use(auth)
	checkoutRoutes.POST("", checkout.Checkout)

	orderRoutes := r.Group("/orders")
	orderRoutes.Use(auth)
	orderRoutes.GET("", orders.GetOrders)
	orderRoutes.GET("/cancelled", orders.GetCancelledOrders)
	orderRoutes.GET("/:id", orders.GetOrderByID)
	orderRoutes.PUT("/:id/cancel", orders.CancelOrder)
}
