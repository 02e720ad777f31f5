package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	apperrors "github.com/iamsuryasonar/Apparel-store-limo-backend/common/errors"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/controllers"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/middleware"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/services"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "jwt-test-secret"

// ---- concrete mock implementing services.CartService ----

type mockCartSvc struct {
	item    *models.CartItem
	items   []models.CartItem
	err     *apperrors.Error
	updated *models.CartItem
	deleted bool
}

func (m *mockCartSvc) AddItem(ctx context.Context, customerID uuid.UUID, req *services.AddItemRequest) (*models.CartItem, *apperrors.Error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

func (m *mockCartSvc) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*models.CartItem, *apperrors.Error) {
	if m.err != nil {
		return nil, m.err
	}
	if quantity == 0 {
		m.deleted = true
		return nil, nil
	}
	return m.updated, nil
}

func (m *mockCartSvc) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) *apperrors.Error {
	if m.err != nil {
		return m.err
	}
	m.deleted = true
	return nil
}

func (m *mockCartSvc) ListCart(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, *apperrors.Error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// ---- concrete mock implementing services.CheckoutService ----

type mockCheckoutSvc struct {
	orders []models.Order
	order  *services.GatewayOrder
	err    *apperrors.Error
}

func (m *mockCheckoutSvc) PlaceOrder(ctx context.Context, customerID uuid.UUID, req *services.CheckoutRequest) ([]models.Order, *apperrors.Error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

func (m *mockCheckoutSvc) CreatePaymentOrder(ctx context.Context, customerID uuid.UUID) (*services.GatewayOrder, *apperrors.Error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

// ---- helpers ----

func setupRouter(cartSvc services.CartService, checkoutSvc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cart := controllers.NewCartController(cartSvc)
	checkout := controllers.NewCheckoutController(checkoutSvc)

	auth := r.Group("/", middleware.AuthMiddleware(jwtSecret))
	auth.GET("/cart", cart.GetCart)
	auth.POST("/cart", cart.AddItem)
	auth.PUT("/cart/:id", cart.UpdateQuantity)
	auth.DELETE("/cart/:id", cart.RemoveItem)
	auth.POST("/checkout", checkout.Checkout)
	return r
}

func bearerToken(t *testing.T, customerID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": customerID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	assert.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestAddItem_Created(t *testing.T) {
	customerID := uuid.New()
	svc := &mockCartSvc{item: &models.CartItem{ID: uuid.New(), CustomerID: customerID, Quantity: 2}}
	r := setupRouter(svc, &mockCheckoutSvc{})

	body := services.AddItemRequest{
		ProductID:      uuid.New(),
		ColorVariantID: uuid.New(),
		SizeVariantID:  uuid.New(),
		Quantity:       2,
	}
	w := doRequest(t, r, http.MethodPost, "/cart", body, bearerToken(t, customerID))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp, "cart_item")
}

func TestAddItem_BadJSON(t *testing.T) {
	r := setupRouter(&mockCartSvc{}, &mockCheckoutSvc{})

	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader([]byte("not-json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItem_MissingToken(t *testing.T) {
	r := setupRouter(&mockCartSvc{}, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodPost, "/cart", services.AddItemRequest{Quantity: 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateQuantity_ZeroDeletes(t *testing.T) {
	svc := &mockCartSvc{}
	r := setupRouter(svc, &mockCheckoutSvc{})

	zero := 0
	w := doRequest(t, r, http.MethodPut, "/cart/"+uuid.NewString(), gin.H{"quantity": &zero}, bearerToken(t, uuid.New()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.deleted)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "cart item deleted", resp["message"])
}

func TestUpdateQuantity_AboveCap(t *testing.T) {
	svc := &mockCartSvc{err: apperrors.ErrQuantityRange}
	r := setupRouter(svc, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodPut, "/cart/"+uuid.NewString(), gin.H{"quantity": 6}, bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantity_BadID(t *testing.T) {
	r := setupRouter(&mockCartSvc{}, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodPut, "/cart/not-a-uuid", gin.H{"quantity": 3}, bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveItem_NoContent(t *testing.T) {
	svc := &mockCartSvc{}
	r := setupRouter(svc, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodDelete, "/cart/"+uuid.NewString(), nil, bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, svc.deleted)
}

func TestRemoveItem_NotFound(t *testing.T) {
	svc := &mockCartSvc{err: apperrors.ErrCartItemNotFound}
	r := setupRouter(svc, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodDelete, "/cart/"+uuid.NewString(), nil, bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func checkoutBody() gin.H {
	return gin.H{
		"address_id":         uuid.NewString(),
		"gateway_order_id":   "order_123",
		"gateway_payment_id": "pay_456",
		"gateway_signature":  "sig",
	}
}

func TestCheckout_Created(t *testing.T) {
	svc := &mockCheckoutSvc{orders: []models.Order{{ID: uuid.New(), LockedPrice: 100, TotalAmount: 200}}}
	r := setupRouter(&mockCartSvc{}, svc)

	w := doRequest(t, r, http.MethodPost, "/checkout", checkoutBody(), bearerToken(t, uuid.New()))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	orders, ok := resp["orders"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, orders, 1)
}

func TestCheckout_StockConflict(t *testing.T) {
	svc := &mockCheckoutSvc{err: apperrors.ErrStockConflict}
	r := setupRouter(&mockCartSvc{}, svc)

	w := doRequest(t, r, http.MethodPost, "/checkout", checkoutBody(), bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckout_SignatureMismatch(t *testing.T) {
	svc := &mockCheckoutSvc{err: apperrors.ErrSignatureMismatch}
	r := setupRouter(&mockCartSvc{}, svc)

	w := doRequest(t, r, http.MethodPost, "/checkout", checkoutBody(), bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckout_MissingAddress(t *testing.T) {
	svc := &mockCheckoutSvc{err: apperrors.ErrMissingAddress}
	r := setupRouter(&mockCartSvc{}, svc)

	w := doRequest(t, r, http.MethodPost, "/checkout", checkoutBody(), bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCheckout_MissingFields(t *testing.T) {
	r := setupRouter(&mockCartSvc{}, &mockCheckoutSvc{})

	w := doRequest(t, r, http.MethodPost, "/checkout", gin.H{"gateway_order_id": "order_123"}, bearerToken(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
