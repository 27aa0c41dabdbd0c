package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/Kariqs/dukani-api/models"
	"github.com/Kariqs/dukani-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type checkoutInput struct {
	UserID uint `json:"userId"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts a user's cart into an order. Total computation, order
// creation with snapshot prices and the cart clear all run inside a single
// transaction: a failed cart clear rolls the order back.
func Checkout(db *gorm.DB, mailer *utils.Mailer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input checkoutInput
		if err := ctx.ShouldBindJSON(&input); err != nil || input.UserID == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing userId")
			return
		}

		var cartItems []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", input.UserID).Find(&cartItems).Error; err != nil {
			abortInternal(ctx, "Failed to fetch cart", err)
			return
		}
		if len(cartItems) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var totalAmount float64
			var orderItems []models.OrderItem
			for _, item := range cartItems {
				totalAmount += item.Product.Price * float64(item.Quantity)
				orderItems = append(orderItems, models.OrderItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Product.Price,
				})
			}

			order = models.Order{
				UserID:      input.UserID,
				OrderRef:    generateOrderRef(),
				TotalAmount: totalAmount,
				Status:      models.OrderStatusPending,
				OrderItems:  orderItems,
			}
			if err := tx.Omit("User").Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("user_id = ?", input.UserID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			abortInternal(ctx, "Failed to place order", err)
			return
		}

		if err := db.Preload("User").Preload("OrderItems.Product").First(&order, order.ID).Error; err != nil {
			abortInternal(ctx, "Failed to fetch order", err)
			return
		}

		sendConfirmationEmail(mailer, order)

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Checkout successful",
			"order":   order,
		})
	}
}

// sendConfirmationEmail is best-effort: the order is committed either way.
func sendConfirmationEmail(mailer *utils.Mailer, order models.Order) {
	if mailer == nil || order.User.Email == nil {
		return
	}

	data := utils.OrderEmailData{
		Name:        order.User.Name,
		OrderRef:    order.OrderRef,
		TotalAmount: order.TotalAmount,
	}
	for _, item := range order.OrderItems {
		data.Items = append(data.Items, utils.OrderEmailItem{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if err := mailer.SendOrderConfirmation(*order.User.Email, data); err != nil {
		log.Println("Failed to send order confirmation email:", err)
	}
}
