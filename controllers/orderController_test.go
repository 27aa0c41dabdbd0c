package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Kariqs/dukani-api/models"
	"github.com/stretchr/testify/assert"
)

type orderListResponse struct {
	Orders      []models.Order `json:"orders"`
	TotalOrders int            `json:"totalOrders"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
}

func TestGetOrdersPaginationAndUserFilter(t *testing.T) {
	engine, db, _ := setupTest(t)
	june := seedUser(t, db, "June", "june@example.com")
	mark := seedUser(t, db, "Mark", "mark@example.com")
	pen := seedProduct(t, db, "Pen", 2, 100, "Office")

	for _, user := range []models.User{june, june, mark} {
		doJSON(t, engine, "POST", "/cart", map[string]any{"userId": user.ID, "productId": pen.ID, "quantity": 1})
		w := doJSON(t, engine, "POST", "/checkout", map[string]any{"userId": user.ID})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, engine, "GET", "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[orderListResponse](t, w)
	assert.Equal(t, 3, resp.TotalOrders)
	assert.Len(t, resp.Orders, 3)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 10, resp.Limit)

	w = doJSON(t, engine, "GET", fmt.Sprintf("/orders?userId=%d", june.ID), nil)
	resp = decodeBody[orderListResponse](t, w)
	assert.Equal(t, 2, resp.TotalOrders)
	for _, order := range resp.Orders {
		assert.Equal(t, june.ID, order.UserID)
	}

	w = doJSON(t, engine, "GET", "/orders?page=2&limit=2", nil)
	resp = decodeBody[orderListResponse](t, w)
	assert.Equal(t, 3, resp.TotalOrders)
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestGetOrderById(t *testing.T) {
	engine, db, _ := setupTest(t)
	user := seedUser(t, db, "June", "june@example.com")
	pen := seedProduct(t, db, "Pen", 2, 100, "Office")

	doJSON(t, engine, "POST", "/cart", map[string]any{"userId": user.ID, "productId": pen.ID, "quantity": 2})
	placed := doJSON(t, engine, "POST", "/checkout", map[string]any{"userId": user.ID})
	order := decodeBody[checkoutResponse](t, placed).Order

	w := doJSON(t, engine, "GET", fmt.Sprintf("/order/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fetched := decodeBody[models.Order](t, w)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, user.Name, fetched.User.Name)
	if assert.Len(t, fetched.OrderItems, 1) {
		assert.Equal(t, pen.Name, fetched.OrderItems[0].Product.Name)
	}

	w = doJSON(t, engine, "GET", "/order/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	engine, db, _ := setupTest(t)
	user := seedUser(t, db, "June", "june@example.com")
	pen := seedProduct(t, db, "Pen", 2, 100, "Office")

	doJSON(t, engine, "POST", "/cart", map[string]any{"userId": user.ID, "productId": pen.ID})
	placed := doJSON(t, engine, "POST", "/checkout", map[string]any{"userId": user.ID})
	order := decodeBody[checkoutResponse](t, placed).Order

	w := doJSON(t, engine, "PUT", "/order", map[string]any{"orderId": order.ID, "status": "PAID"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	engine, db, _ := setupTest(t)
	user := seedUser(t, db, "June", "june@example.com")
	pen := seedProduct(t, db, "Pen", 2, 100, "Office")

	doJSON(t, engine, "POST", "/cart", map[string]any{"userId": user.ID, "productId": pen.ID})
	placed := doJSON(t, engine, "POST", "/checkout", map[string]any{"userId": user.ID})
	order := decodeBody[checkoutResponse](t, placed).Order

	w := doJSON(t, engine, "PUT", "/order", map[string]any{"orderId": order.ID, "status": "REFUNDED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.Order
	db.First(&unchanged, order.ID)
	assert.Equal(t, models.OrderStatusPending, unchanged.Status, "rejected update leaves the order unchanged")
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	engine, _, _ := setupTest(t)

	w := doJSON(t, engine, "PUT", "/order", map[string]any{"orderId": 999, "status": "PAID"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
