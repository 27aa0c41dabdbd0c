package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Dukani API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account

PRODUCT
- GET "/products" - List products (search, page, limit)
- POST "/products" - Create new product (JSON or multipart)
- GET "/products/{id}" - Get product by ID
- PUT "/products/{id}" - Update product
- DELETE "/products/{id}" - Delete product

CART
- GET "/cart?userId=" - Get a user's cart
- POST "/cart" - Add item to cart
- PUT "/cart" - Update item quantity
- DELETE "/cart?id=" - Remove cart item

CHECKOUT
- POST "/checkout" - Convert a user's cart into an order

ORDER
- GET "/orders" - List orders (page, limit, userId)
- GET "/order/{id}" - Get order by ID
- PUT "/order" - Update order status`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
