package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kariqs/dukani-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type addToCartInput struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type updateCartItemInput struct {
	CartItemID uint `json:"cartItemId"`
	Quantity   int  `json:"quantity"`
}

func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId, err := strconv.Atoi(ctx.Query("userId"))
		if err != nil || userId <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing userId")
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userId).Find(&items).Error; err != nil {
			abortInternal(ctx, "Failed to fetch cart", err)
			return
		}

		ctx.JSON(http.StatusOK, items)
	}
}

// AddToCart merges with an existing (user, product) row by incrementing its
// quantity; otherwise it inserts a new row. Lookup and write run in one
// transaction so concurrent adds cannot produce duplicate rows.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input addToCartInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidData)
			return
		}
		if input.UserID == 0 || input.ProductID == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing userId or productId")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				abortInternal(ctx, "Failed to validate product", err)
			}
			return
		}

		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			err := tx.Where("user_id = ? AND product_id = ?", input.UserID, input.ProductID).
				First(&item).Error
			if err == nil {
				item.Quantity += quantity
				return tx.Save(&item).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			item = models.CartItem{
				UserID:    input.UserID,
				ProductID: input.ProductID,
				Quantity:  quantity,
			}
			return tx.Create(&item).Error
		})
		if err != nil {
			abortInternal(ctx, "Failed to add to cart", err)
			return
		}

		item.Product = product
		ctx.JSON(http.StatusCreated, item)
	}
}

func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input updateCartItemInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidData)
			return
		}
		if input.CartItemID == 0 || input.Quantity < 1 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidData)
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").First(&item, input.CartItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			} else {
				abortInternal(ctx, "Failed to fetch cart item", err)
			}
			return
		}

		if err := db.Model(&item).Update("quantity", input.Quantity).Error; err != nil {
			abortInternal(ctx, "Failed to update cart item", err)
			return
		}
		item.Quantity = input.Quantity

		ctx.JSON(http.StatusOK, item)
	}
}

func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.Atoi(ctx.Query("id"))
		if err != nil || id <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing cartItemId")
			return
		}

		result := db.Delete(&models.CartItem{}, id)
		if result.Error != nil {
			abortInternal(ctx, "Failed to remove cart item", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
	}
}
